package bayes

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		bf        float64
		strength  EvidenceStrength
		supported SupportedHypothesis
	}{
		{1.5, StrengthAnecdotal, SupportsH1},
		{5, StrengthModerate, SupportsH1},
		{15, StrengthStrong, SupportsH1},
		{50, StrengthVeryStrong, SupportsH1},
		{250, StrengthExtreme, SupportsH1},
		{0.5, StrengthAnecdotal, SupportsH0},
		{0.2, StrengthModerate, SupportsH0},
		{0.05, StrengthStrong, SupportsH0},
		{0.02, StrengthVeryStrong, SupportsH0},
		{0.001, StrengthExtreme, SupportsH0},
		{1, StrengthAnecdotal, SupportsH1},
	}
	for _, tc := range cases {
		strength, supported := Classify(tc.bf)
		if strength != tc.strength || supported != tc.supported {
			t.Errorf("Classify(%v) = (%v, %v), want (%v, %v)",
				tc.bf, strength, supported, tc.strength, tc.supported)
		}
	}
}

func TestSummary(t *testing.T) {
	s := Summary(5.67)
	if !strings.Contains(s, "5.67") || !strings.Contains(s, "Moderate") || !strings.Contains(s, "H1") {
		t.Errorf("Unexpected summary: %q", s)
	}

	s = Summary(0.02)
	if !strings.Contains(s, "Very strong") || !strings.Contains(s, "H0") {
		t.Errorf("Unexpected summary: %q", s)
	}
}
