package bayes

// Request mirrors the public calling contract: the data summary, the null
// value, and the alternative hypothesis specification, plus the flag for
// the plot-data side channel.
type Request struct {
	DataMean float64 `json:"data_mean"`
	DataSE   float64 `json:"data_se"`
	H0Value  float64 `json:"h0_value"`

	Distribution PriorKind `json:"distribution"`
	H1Value      *float64  `json:"h1_value,omitempty"`
	UniformMin   *float64  `json:"uniform_min,omitempty"`
	UniformMax   *float64  `json:"uniform_max,omitempty"`
	Mode         *float64  `json:"mode,omitempty"`
	SD           *float64  `json:"sd,omitempty"`
	Half         *Half     `json:"half,omitempty"`

	PlotData bool `json:"plot_data,omitempty"`
}

// Hypothesis extracts the H1 specification from the request
func (r Request) Hypothesis() HypothesisSpec {
	return HypothesisSpec{
		Kind:       r.Distribution,
		H0Value:    r.H0Value,
		H1Value:    r.H1Value,
		UniformMin: r.UniformMin,
		UniformMax: r.UniformMax,
		Mode:       r.Mode,
		SD:         r.SD,
		Half:       r.Half,
	}
}

// Compute resolves the prior and runs the engine in one call
func Compute(req Request) (*Result, error) {
	prior, err := ResolvePrior(req.Hypothesis())
	if err != nil {
		return nil, err
	}
	return Analyze(SamplingDistribution{Mean: req.DataMean, SE: req.DataSE}, req.H0Value, prior, req.PlotData)
}
