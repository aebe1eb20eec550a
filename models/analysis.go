package models

import (
	"fmt"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
)

// Analysis is a completed Bayes factor computation with its inputs, the
// resolved prior, and the verdict, as stored and served to callers.
type Analysis struct {
	ID    core.AnalysisID `json:"id"`
	Label string          `json:"label,omitempty"`

	DataMean float64 `json:"data_mean"`
	DataSE   float64 `json:"data_se"`
	H0Value  float64 `json:"h0_value"`

	Prior bayes.PriorParams `json:"prior"`

	BF           float64                   `json:"bf"`
	LikelihoodH0 float64                   `json:"likelihood_h0"`
	MarginalH1   float64                   `json:"marginal_h1"`
	Strength     bayes.EvidenceStrength    `json:"strength"`
	Supported    bayes.SupportedHypothesis `json:"supported"`

	LikelihoodCurve []bayes.Point `json:"likelihood_curve,omitempty"`
	PriorCurve      []bayes.Point `json:"prior_curve,omitempty"`

	Fingerprint core.Hash      `json:"fingerprint"`
	CreatedAt   core.Timestamp `json:"created_at"`
}

// Summary returns the one-line report for the analysis
func (a *Analysis) Summary() string {
	return bayes.Summary(a.BF)
}

// NewAnalysis assembles an analysis record from a request and its result
func NewAnalysis(label string, req bayes.Request, res *bayes.Result) *Analysis {
	strength, supported := bayes.Classify(res.BF)
	return &Analysis{
		ID:              core.AnalysisID(core.NewID()),
		Label:           label,
		DataMean:        req.DataMean,
		DataSE:          req.DataSE,
		H0Value:         req.H0Value,
		Prior:           res.Prior,
		BF:              res.BF,
		LikelihoodH0:    res.LikelihoodH0,
		MarginalH1:      res.MarginalH1,
		Strength:        strength,
		Supported:       supported,
		LikelihoodCurve: res.LikelihoodCurve,
		PriorCurve:      res.PriorCurve,
		Fingerprint:     FingerprintRequest(req),
		CreatedAt:       core.Now(),
	}
}

// FingerprintRequest hashes the computation inputs so identical requests
// are recognizable across runs.
func FingerprintRequest(req bayes.Request) core.Hash {
	fields := map[string]string{
		"data_mean":    fmt.Sprintf("%g", req.DataMean),
		"data_se":      fmt.Sprintf("%g", req.DataSE),
		"h0_value":     fmt.Sprintf("%g", req.H0Value),
		"distribution": string(req.Distribution),
	}
	addOptional := func(key string, v *float64) {
		if v != nil {
			fields[key] = fmt.Sprintf("%g", *v)
		}
	}
	addOptional("h1_value", req.H1Value)
	addOptional("uniform_min", req.UniformMin)
	addOptional("uniform_max", req.UniformMax)
	addOptional("mode", req.Mode)
	addOptional("sd", req.SD)
	if req.Half != nil {
		fields["half"] = string(*req.Half)
	}
	return core.Fingerprint(fields)
}

// Scenario is one labeled computation request, typically a row of a
// batch dataset.
type Scenario struct {
	Label   string        `json:"label"`
	Request bayes.Request `json:"request"`
}
