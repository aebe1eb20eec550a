package bayes

import "fmt"

// EvidenceStrength classifies a Bayes factor using the criteria of
// Lee and Wagenmakers 2014.
type EvidenceStrength string

const (
	StrengthAnecdotal  EvidenceStrength = "Anecdotal"
	StrengthModerate   EvidenceStrength = "Moderate"
	StrengthStrong     EvidenceStrength = "Strong"
	StrengthVeryStrong EvidenceStrength = "Very strong"
	StrengthExtreme    EvidenceStrength = "Extreme"
)

// SupportedHypothesis names the hypothesis the evidence favors
type SupportedHypothesis string

const (
	SupportsH1 SupportedHypothesis = "H1"
	SupportsH0 SupportedHypothesis = "H0"
)

// Classify returns the evidence strength and the favored hypothesis for
// a Bayes factor. Classification is presentation only; it never feeds
// back into the computation.
func Classify(bf float64) (EvidenceStrength, SupportedHypothesis) {
	supported := SupportsH0
	if bf >= 1 {
		supported = SupportsH1
	}
	abs := bf
	if bf > 0 && bf < 1 {
		abs = 1 / bf
	}

	switch {
	case abs < 3:
		return StrengthAnecdotal, supported
	case abs < 10:
		return StrengthModerate, supported
	case abs < 30:
		return StrengthStrong, supported
	case abs < 100:
		return StrengthVeryStrong, supported
	default:
		return StrengthExtreme, supported
	}
}

// Summary formats a one-line report of the result
func Summary(bf float64) string {
	strength, supported := Classify(bf)
	return fmt.Sprintf("Bayes Factor: %.3g - %s evidence in favour of %s", bf, strength, supported)
}
