package bayes

import (
	"math"

	"gobayes/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// PriorKind identifies the family of an alternative-hypothesis prior
type PriorKind string

const (
	PriorUniform    PriorKind = "uniform"
	PriorNormal     PriorKind = "normal"
	PriorHalfNormal PriorKind = "half-normal"
)

// Valid reports whether the kind is one of the supported families
func (k PriorKind) Valid() bool {
	return k == PriorUniform || k == PriorNormal || k == PriorHalfNormal
}

// Half selects which side of the mode a half-normal prior extends over
type Half string

const (
	HalfUpper Half = "upper"
	HalfLower Half = "lower"
)

// Prior is the alternative hypothesis H1 expressed as a probability
// distribution over the true mean. It is a sealed sum type: exactly the
// uniform, normal and half-normal families implement it, so the engine
// handles every variant's density and support by construction.
type Prior interface {
	// Kind returns the distribution family.
	Kind() PriorKind
	// Density returns the prior probability density at a hypothesized mean.
	Density(mu float64) float64
	// Validate checks the distribution parameters.
	Validate() error

	// support returns integration bounds wide enough that the integrand's
	// contribution outside them is negligible, given the likelihood spread.
	support(dataMean, dataSE float64) (lo, hi float64)
	sealedPrior()
}

// supportWidths is the number of spread-equivalent widths the integration
// range covers on each side of both the likelihood and the prior.
const supportWidths = 8.0

// Uniform is a flat prior between Min and Max
type Uniform struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (u Uniform) Kind() PriorKind { return PriorUniform }

func (u Uniform) Density(mu float64) float64 {
	if mu < u.Min || mu > u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

func (u Uniform) Validate() error {
	if math.IsNaN(u.Min) || math.IsInf(u.Min, 0) || math.IsNaN(u.Max) || math.IsInf(u.Max, 0) {
		return core.NewConfigurationError("uniform bounds must be finite")
	}
	if u.Min >= u.Max {
		return core.NewConfigurationError("uniform prior requires min < max")
	}
	return nil
}

func (u Uniform) support(dataMean, dataSE float64) (float64, float64) {
	return u.Min, u.Max
}

func (u Uniform) sealedPrior() {}

// Normal is a Gaussian prior centered on the predicted effect
type Normal struct {
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

func (n Normal) Kind() PriorKind { return PriorNormal }

func (n Normal) Density(mu float64) float64 {
	return distuv.Normal{Mu: n.Mean, Sigma: n.SD}.Prob(mu)
}

func (n Normal) Validate() error {
	if math.IsNaN(n.Mean) || math.IsInf(n.Mean, 0) {
		return core.NewConfigurationError("normal prior mean must be finite")
	}
	if !(n.SD > 0) || math.IsInf(n.SD, 0) {
		return core.NewConfigurationError("normal prior requires sd > 0")
	}
	return nil
}

func (n Normal) support(dataMean, dataSE float64) (float64, float64) {
	lo := math.Min(dataMean-supportWidths*dataSE, n.Mean-supportWidths*n.SD)
	hi := math.Max(dataMean+supportWidths*dataSE, n.Mean+supportWidths*n.SD)
	return lo, hi
}

func (n Normal) sealedPrior() {}

// HalfNormal is a normal distribution folded at its mode, retaining
// density on the side selected by Half only
type HalfNormal struct {
	Mode float64 `json:"mode"`
	SD   float64 `json:"sd"`
	Half Half    `json:"half"`
}

func (h HalfNormal) Kind() PriorKind { return PriorHalfNormal }

func (h HalfNormal) Density(mu float64) float64 {
	if h.Half == HalfUpper && mu < h.Mode {
		return 0
	}
	if h.Half == HalfLower && mu > h.Mode {
		return 0
	}
	// Folded density: twice the normal density on the kept side.
	return 2 * distuv.Normal{Mu: h.Mode, Sigma: h.SD}.Prob(mu)
}

func (h HalfNormal) Validate() error {
	if math.IsNaN(h.Mode) || math.IsInf(h.Mode, 0) {
		return core.NewConfigurationError("half-normal prior mode must be finite")
	}
	if !(h.SD > 0) || math.IsInf(h.SD, 0) {
		return core.NewConfigurationError("half-normal prior requires sd > 0")
	}
	if h.Half != HalfUpper && h.Half != HalfLower {
		return core.NewConfigurationError("half must be 'upper' or 'lower'")
	}
	return nil
}

func (h HalfNormal) support(dataMean, dataSE float64) (float64, float64) {
	if h.Half == HalfLower {
		lo := math.Min(dataMean-supportWidths*dataSE, h.Mode-supportWidths*h.SD)
		return lo, h.Mode
	}
	hi := math.Max(dataMean+supportWidths*dataSE, h.Mode+supportWidths*h.SD)
	return h.Mode, hi
}

func (h HalfNormal) sealedPrior() {}
