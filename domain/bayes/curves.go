package bayes

import "math"

// Point is one sample of a curve for external rendering
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// curvePoints matches the sampling resolution of the reference plots.
const curvePoints = 101

// likelihoodWindow is how many standard errors the likelihood curve
// extends on either side of the data mean.
const likelihoodWindow = 5.0

// sampleCurves evaluates the likelihood and prior densities over a shared
// grid covering both the integration range and the likelihood window.
// The engine returns the points and never draws anything, so rendering
// stays outside the module.
func sampleCurves(data SamplingDistribution, prior Prior, lo, hi float64) (likelihood, priorCurve []Point) {
	gridLo := math.Min(lo, data.Mean-likelihoodWindow*data.SE)
	gridHi := math.Max(hi, data.Mean+likelihoodWindow*data.SE)
	step := (gridHi - gridLo) / (curvePoints - 1)

	likelihood = make([]Point, curvePoints)
	priorCurve = make([]Point, curvePoints)
	for i := 0; i < curvePoints; i++ {
		x := gridLo + float64(i)*step
		likelihood[i] = Point{X: x, Y: data.Likelihood(x)}
		priorCurve[i] = Point{X: x, Y: prior.Density(x)}
	}
	return likelihood, priorCurve
}
