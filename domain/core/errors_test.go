package core

import (
	"fmt"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		err   error
		check func(error) bool
	}{
		{NewConfigurationError("missing h1_value"), IsConfigurationError},
		{NewInvalidInputError("data_se", 0), IsInvalidInputError},
		{NewIntegrationError("non-finite marginal"), IsIntegrationError},
		{NewNotFoundError("analysis", "abc"), IsNotFoundError},
		{ErrAnalysisNotFound, IsNotFoundError},
	}
	for i, tc := range cases {
		if !tc.check(tc.err) {
			t.Errorf("case %d: helper did not match %v", i, tc.err)
		}
	}
}

func TestErrorHelpers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("computing scenario: %w", NewInvalidInputError("data_se", -1))
	if !IsInvalidInputError(wrapped) {
		t.Error("Wrapped invalid input error not detected")
	}
	if IsConfigurationError(wrapped) {
		t.Error("Wrapped invalid input error misclassified as configuration error")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	fields := map[string]string{"data_mean": "0.5", "data_se": "0.2"}

	fp1 := Fingerprint(fields)
	fp2 := Fingerprint(map[string]string{"data_se": "0.2", "data_mean": "0.5"})
	if !fp1.Equals(fp2) {
		t.Errorf("Fingerprints differ for identical fields: %s vs %s", fp1, fp2)
	}

	fp3 := Fingerprint(map[string]string{"data_mean": "0.6", "data_se": "0.2"})
	if fp1.Equals(fp3) {
		t.Error("Different inputs produced identical fingerprints")
	}
}
