package bayes

import (
	"math"
	"sort"

	"gobayes/domain/core"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// SamplingDistribution describes the observed data: the sampling
// distribution of the sample mean, assumed normal per the Central Limit
// Theorem regardless of the underlying data's distribution.
type SamplingDistribution struct {
	Mean float64 `json:"mean"`
	SE   float64 `json:"se"`
}

// Validate checks the data inputs
func (d SamplingDistribution) Validate() error {
	if math.IsNaN(d.Mean) || math.IsInf(d.Mean, 0) {
		return core.NewInvalidInputError("data_mean", d.Mean)
	}
	if !(d.SE > 0) || math.IsInf(d.SE, 0) {
		return core.NewInvalidInputError("data_se", d.SE)
	}
	return nil
}

// Likelihood returns the density of observing the data mean given a
// hypothesized true mean mu.
func (d SamplingDistribution) Likelihood(mu float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: d.SE}.Prob(d.Mean)
}

// Result is the outcome of a Bayes factor computation. It is a pure
// function of the inputs; curves are populated only when plot data was
// requested.
type Result struct {
	BF           float64     `json:"bf"`
	LikelihoodH0 float64     `json:"likelihood_h0"`
	MarginalH1   float64     `json:"marginal_h1"`
	Prior        PriorParams `json:"prior"`

	LikelihoodCurve []Point `json:"likelihood_curve,omitempty"`
	PriorCurve      []Point `json:"prior_curve,omitempty"`
}

// Quadrature parameters. Gauss-Legendre converges spectrally on smooth
// integrands; the coarse/fine pair exists to detect the ill-conditioned
// cases rather than to chase accuracy.
const (
	quadNodesCoarse = 64
	quadNodesFine   = 128
	quadRelTol      = 1e-6
)

// BayesFactor computes P(data|H1) / P(data|H0) for a fully parameterized
// prior. Conventionally BF > 1 favors H1 and BF < 1 favors H0; the raw
// ratio is returned without clamping.
func BayesFactor(data SamplingDistribution, h0 float64, prior Prior) (float64, error) {
	res, err := Analyze(data, h0, prior, false)
	if err != nil {
		return 0, err
	}
	return res.BF, nil
}

// Analyze computes the Bayes factor and, when plotData is set, the
// likelihood and prior curves over a shared grid for external rendering.
func Analyze(data SamplingDistribution, h0 float64, prior Prior, plotData bool) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(h0) || math.IsInf(h0, 0) {
		return nil, core.NewInvalidInputError("h0_value", h0)
	}
	if err := prior.Validate(); err != nil {
		return nil, err
	}

	// Point likelihood under the null: normal density of the data mean at H0.
	likelihoodH0 := distuv.Normal{Mu: h0, Sigma: data.SE}.Prob(data.Mean)

	// Marginal likelihood under H1: integral of likelihood x prior density
	// over the prior's support.
	lo, hi := prior.support(data.Mean, data.SE)
	integrand := func(mu float64) float64 {
		return data.Likelihood(mu) * prior.Density(mu)
	}
	marginalH1, err := integrate(integrand, lo, hi, data)
	if err != nil {
		return nil, err
	}

	bf := marginalH1 / likelihoodH0
	if math.IsNaN(bf) || math.IsInf(bf, 0) {
		return nil, core.NewIntegrationError("likelihood ratio is not finite")
	}

	res := &Result{
		BF:           bf,
		LikelihoodH0: likelihoodH0,
		MarginalH1:   marginalH1,
		Prior:        Params(prior),
	}
	if plotData {
		res.LikelihoodCurve, res.PriorCurve = sampleCurves(data, prior, lo, hi)
	}
	return res, nil
}

// integrate evaluates the marginal likelihood with deterministic
// Gauss-Legendre quadrature. The range is split at breakpoints around the
// likelihood peak so a narrow likelihood inside a wide prior support is
// still resolved, and a coarse/fine refinement pair guards the tolerance.
func integrate(f func(float64) float64, lo, hi float64, data SamplingDistribution) (float64, error) {
	if !(hi > lo) {
		return 0, core.NewIntegrationError("empty integration range")
	}

	segments := splitAtPeak(lo, hi, data.Mean, data.SE)
	var coarse, fine float64
	for i := 0; i+1 < len(segments); i++ {
		coarse += quad.Fixed(f, segments[i], segments[i+1], quadNodesCoarse, nil, 0)
		fine += quad.Fixed(f, segments[i], segments[i+1], quadNodesFine, nil, 0)
	}

	if math.IsNaN(fine) || math.IsInf(fine, 0) || fine < 0 {
		return 0, core.NewIntegrationError("marginal likelihood is not a finite non-negative value")
	}
	if fine > 0 && math.Abs(fine-coarse) > quadRelTol*fine {
		return 0, core.NewIntegrationError("quadrature refinement did not converge")
	}
	return fine, nil
}

// splitAtPeak returns sorted segment boundaries covering [lo, hi] with
// breakpoints at a few SE-multiples around the likelihood peak.
func splitAtPeak(lo, hi, mean, se float64) []float64 {
	points := []float64{lo, hi}
	for _, k := range []float64{-supportWidths, -4, -2, -1, 0, 1, 2, 4, supportWidths} {
		p := mean + k*se
		if p > lo && p < hi {
			points = append(points, p)
		}
	}
	sort.Float64s(points)
	return points
}
