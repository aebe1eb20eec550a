package analysis

import (
	"math"

	"gobayes/domain/core"

	"github.com/montanaflynn/stats"
)

// SampleSummary condenses raw observations into the mean and standard
// error the Bayes factor engine consumes.
type SampleSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	SE     float64 `json:"se"`
	N      int     `json:"n"`
}

// Summarize computes the sample mean and its standard error from raw
// observations. Requires at least two finite values; the standard error
// is the sample standard deviation over the square root of n.
func Summarize(samples []float64) (*SampleSummary, error) {
	if len(samples) < 2 {
		return nil, core.NewInvalidInputError("sample_size", float64(len(samples)))
	}
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, core.NewInvalidInputError("sample_value", v)
		}
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return nil, core.NewInvalidInputError("sample_mean", math.NaN())
	}
	sd, err := stats.StandardDeviationSample(samples)
	if err != nil {
		return nil, core.NewInvalidInputError("sample_std_dev", math.NaN())
	}
	se := sd / math.Sqrt(float64(len(samples)))
	if !(se > 0) {
		// Zero-variance samples yield SE = 0, which the engine rejects.
		return nil, core.NewInvalidInputError("sample_se", se)
	}

	return &SampleSummary{
		Mean:   mean,
		StdDev: sd,
		SE:     se,
		N:      len(samples),
	}, nil
}
