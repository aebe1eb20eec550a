package bayes

import "gobayes/domain/core"

// PriorParams is the flat, serializable form of a Prior, used by the
// transport and persistence layers. Fields irrelevant to the kind are nil.
type PriorParams struct {
	Kind PriorKind `json:"kind"`
	Min  *float64  `json:"uniform_min,omitempty"`
	Max  *float64  `json:"uniform_max,omitempty"`
	Mode *float64  `json:"mode,omitempty"` // mean for normal priors
	SD   *float64  `json:"sd,omitempty"`
	Half Half      `json:"half,omitempty"`
}

// Prior reconstructs the typed prior from its flat form
func (p PriorParams) Prior() (Prior, error) {
	switch p.Kind {
	case PriorUniform:
		if p.Min == nil || p.Max == nil {
			return nil, core.NewConfigurationError("uniform prior requires min and max")
		}
		prior := Uniform{Min: *p.Min, Max: *p.Max}
		return prior, prior.Validate()
	case PriorNormal:
		if p.Mode == nil || p.SD == nil {
			return nil, core.NewConfigurationError("normal prior requires mean and sd")
		}
		prior := Normal{Mean: *p.Mode, SD: *p.SD}
		return prior, prior.Validate()
	case PriorHalfNormal:
		if p.Mode == nil || p.SD == nil {
			return nil, core.NewConfigurationError("half-normal prior requires mode and sd")
		}
		prior := HalfNormal{Mode: *p.Mode, SD: *p.SD, Half: p.Half}
		return prior, prior.Validate()
	default:
		return nil, core.NewConfigurationError("unknown prior kind '" + string(p.Kind) + "'")
	}
}

// Params returns the flat form of a prior
func Params(p Prior) PriorParams {
	switch prior := p.(type) {
	case Uniform:
		return PriorParams{Kind: PriorUniform, Min: ptr(prior.Min), Max: ptr(prior.Max)}
	case Normal:
		return PriorParams{Kind: PriorNormal, Mode: ptr(prior.Mean), SD: ptr(prior.SD)}
	case HalfNormal:
		return PriorParams{Kind: PriorHalfNormal, Mode: ptr(prior.Mode), SD: ptr(prior.SD), Half: prior.Half}
	default:
		return PriorParams{}
	}
}

func ptr(v float64) *float64 { return &v }
