package bayes

import (
	"math"

	"gobayes/domain/core"
)

// HypothesisSpec is the caller-facing description of an alternative
// hypothesis. Either the explicit parameters for the chosen kind are
// complete, or H1Value carries a single-number estimate of the expected
// effect from which the parameters are derived (Dienes 2014).
type HypothesisSpec struct {
	Kind    PriorKind `json:"distribution"`
	H0Value float64   `json:"h0_value"`
	H1Value *float64  `json:"h1_value,omitempty"`

	// Explicit parameter overrides. When the complete set for Kind is
	// present, it takes precedence and H1Value is ignored.
	UniformMin *float64 `json:"uniform_min,omitempty"`
	UniformMax *float64 `json:"uniform_max,omitempty"`
	Mode       *float64 `json:"mode,omitempty"` // mean for normal priors
	SD         *float64 `json:"sd,omitempty"`
	Half       *Half    `json:"half,omitempty"`
}

// ResolvePrior turns a hypothesis spec into a fully parameterized prior.
// Pure transformation: explicit parameters win when complete, otherwise
// parameters are derived from H1Value relative to H0Value as
//
//	uniform:     min = H0, max = H1 (swapped so min < max)
//	normal:      mean = H1, sd = |H1 - H0| / 2
//	half-normal: mode = H0, sd = |H1 - H0|, half = side away from H0
func ResolvePrior(spec HypothesisSpec) (Prior, error) {
	if !spec.Kind.Valid() {
		return nil, core.NewConfigurationError("distribution must be 'uniform', 'normal' or 'half-normal'")
	}
	if math.IsNaN(spec.H0Value) || math.IsInf(spec.H0Value, 0) {
		return nil, core.NewConfigurationError("h0_value must be finite")
	}

	if prior, ok := explicitPrior(spec); ok {
		if err := prior.Validate(); err != nil {
			return nil, err
		}
		return prior, nil
	}

	if spec.H1Value == nil {
		return nil, core.NewConfigurationError("either h1_value or the complete explicit parameters for '" + string(spec.Kind) + "' are required")
	}
	h1 := *spec.H1Value
	if math.IsNaN(h1) || math.IsInf(h1, 0) {
		return nil, core.NewConfigurationError("h1_value must be finite")
	}

	var prior Prior
	switch spec.Kind {
	case PriorUniform:
		prior = Uniform{Min: math.Min(spec.H0Value, h1), Max: math.Max(spec.H0Value, h1)}
	case PriorNormal:
		prior = Normal{Mean: h1, SD: math.Abs(h1-spec.H0Value) / 2}
	case PriorHalfNormal:
		half := HalfLower
		if h1 > spec.H0Value {
			half = HalfUpper
		}
		if spec.Half != nil {
			half = *spec.Half
		}
		prior = HalfNormal{Mode: spec.H0Value, SD: math.Abs(h1 - spec.H0Value), Half: half}
	}
	if err := prior.Validate(); err != nil {
		return nil, err
	}
	return prior, nil
}

// explicitPrior assembles a prior from explicit overrides when the
// complete set for the spec's kind is present.
func explicitPrior(spec HypothesisSpec) (Prior, bool) {
	switch spec.Kind {
	case PriorUniform:
		if spec.UniformMin != nil && spec.UniformMax != nil {
			return Uniform{Min: *spec.UniformMin, Max: *spec.UniformMax}, true
		}
	case PriorNormal:
		if spec.Mode != nil && spec.SD != nil {
			return Normal{Mean: *spec.Mode, SD: *spec.SD}, true
		}
	case PriorHalfNormal:
		if spec.Mode != nil && spec.SD != nil {
			half := HalfUpper
			if spec.Half != nil {
				half = *spec.Half
			} else if spec.H1Value != nil && *spec.H1Value < spec.H0Value {
				half = HalfLower
			}
			return HalfNormal{Mode: *spec.Mode, SD: *spec.SD, Half: half}, true
		}
	}
	return nil, false
}
