package bayes

import (
	"testing"

	"gobayes/domain/core"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolvePrior_UniformDerivation(t *testing.T) {
	prior, err := ResolvePrior(HypothesisSpec{Kind: PriorUniform, H0Value: 0, H1Value: floatPtr(2)})
	if err != nil {
		t.Fatalf("ResolvePrior failed: %v", err)
	}
	u, ok := prior.(Uniform)
	if !ok {
		t.Fatalf("Expected Uniform, got %T", prior)
	}
	if u.Min != 0 || u.Max != 2 {
		t.Errorf("Expected [0, 2], got [%v, %v]", u.Min, u.Max)
	}

	// A negative estimate swaps the bounds so min < max holds.
	prior, err = ResolvePrior(HypothesisSpec{Kind: PriorUniform, H0Value: 0, H1Value: floatPtr(-2)})
	if err != nil {
		t.Fatalf("ResolvePrior failed: %v", err)
	}
	u = prior.(Uniform)
	if u.Min != -2 || u.Max != 0 {
		t.Errorf("Expected [-2, 0], got [%v, %v]", u.Min, u.Max)
	}
}

func TestResolvePrior_NormalDerivation(t *testing.T) {
	prior, err := ResolvePrior(HypothesisSpec{Kind: PriorNormal, H0Value: 1, H1Value: floatPtr(3)})
	if err != nil {
		t.Fatalf("ResolvePrior failed: %v", err)
	}
	n, ok := prior.(Normal)
	if !ok {
		t.Fatalf("Expected Normal, got %T", prior)
	}
	if n.Mean != 3 || n.SD != 1 {
		t.Errorf("Expected mean=3 sd=1, got mean=%v sd=%v", n.Mean, n.SD)
	}
}

func TestResolvePrior_HalfNormalDerivation(t *testing.T) {
	prior, err := ResolvePrior(HypothesisSpec{Kind: PriorHalfNormal, H0Value: 0, H1Value: floatPtr(2)})
	if err != nil {
		t.Fatalf("ResolvePrior failed: %v", err)
	}
	h, ok := prior.(HalfNormal)
	if !ok {
		t.Fatalf("Expected HalfNormal, got %T", prior)
	}
	if h.Mode != 0 || h.SD != 2 || h.Half != HalfUpper {
		t.Errorf("Expected mode=0 sd=2 upper, got %+v", h)
	}

	// An estimate below H0 defaults to the lower half.
	prior, _ = ResolvePrior(HypothesisSpec{Kind: PriorHalfNormal, H0Value: 0, H1Value: floatPtr(-2)})
	h = prior.(HalfNormal)
	if h.Half != HalfLower || h.SD != 2 {
		t.Errorf("Expected lower half with sd=2, got %+v", h)
	}

	// An explicit half overrides the default.
	lower := HalfLower
	prior, _ = ResolvePrior(HypothesisSpec{Kind: PriorHalfNormal, H0Value: 0, H1Value: floatPtr(2), Half: &lower})
	h = prior.(HalfNormal)
	if h.Half != HalfLower {
		t.Errorf("Explicit half should win, got %v", h.Half)
	}
}

func TestResolvePrior_ExplicitParametersWin(t *testing.T) {
	prior, err := ResolvePrior(HypothesisSpec{
		Kind:       PriorUniform,
		H1Value:    floatPtr(2),
		UniformMin: floatPtr(-1),
		UniformMax: floatPtr(1),
	})
	if err != nil {
		t.Fatalf("ResolvePrior failed: %v", err)
	}
	u := prior.(Uniform)
	if u.Min != -1 || u.Max != 1 {
		t.Errorf("Explicit bounds should win over derivation, got [%v, %v]", u.Min, u.Max)
	}
}

func TestResolvePrior_MissingSpecification(t *testing.T) {
	cases := []HypothesisSpec{
		{Kind: PriorUniform},
		{Kind: PriorNormal},
		{Kind: PriorHalfNormal},
		{Kind: PriorUniform, UniformMin: floatPtr(0)}, // incomplete explicit set
		{Kind: PriorNormal, SD: floatPtr(1)},
	}
	for i, spec := range cases {
		_, err := ResolvePrior(spec)
		if !core.IsConfigurationError(err) {
			t.Errorf("case %d: expected configuration error, got %v", i, err)
		}
	}
}

func TestResolvePrior_DegenerateDerivation(t *testing.T) {
	// H1 estimate equal to H0 collapses every family to zero spread.
	for _, kind := range []PriorKind{PriorUniform, PriorNormal, PriorHalfNormal} {
		_, err := ResolvePrior(HypothesisSpec{Kind: kind, H0Value: 1, H1Value: floatPtr(1)})
		if !core.IsConfigurationError(err) {
			t.Errorf("%s: expected configuration error, got %v", kind, err)
		}
	}
}

func TestResolvePrior_InvalidExplicitParameters(t *testing.T) {
	cases := []HypothesisSpec{
		{Kind: PriorUniform, UniformMin: floatPtr(2), UniformMax: floatPtr(1)},
		{Kind: PriorUniform, UniformMin: floatPtr(1), UniformMax: floatPtr(1)},
		{Kind: PriorNormal, Mode: floatPtr(1), SD: floatPtr(0)},
		{Kind: PriorNormal, Mode: floatPtr(1), SD: floatPtr(-2)},
		{Kind: PriorHalfNormal, Mode: floatPtr(0), SD: floatPtr(0)},
	}
	for i, spec := range cases {
		_, err := ResolvePrior(spec)
		if !core.IsConfigurationError(err) {
			t.Errorf("case %d: expected configuration error, got %v", i, err)
		}
	}
}

func TestResolvePrior_UnknownKind(t *testing.T) {
	_, err := ResolvePrior(HypothesisSpec{Kind: "cauchy", H1Value: floatPtr(1)})
	if !core.IsConfigurationError(err) {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestResolvePrior_RoundTrip(t *testing.T) {
	// Deriving parameters and feeding them back as explicit parameters
	// must give the identical Bayes factor.
	h1 := 2.0
	for _, kind := range []PriorKind{PriorUniform, PriorNormal, PriorHalfNormal} {
		derived, err := Compute(Request{
			DataMean: 0.5, DataSE: 0.2,
			Distribution: kind, H1Value: &h1,
		})
		if err != nil {
			t.Fatalf("%s: derived computation failed: %v", kind, err)
		}

		params := derived.Prior
		explicit, err := Compute(Request{
			DataMean: 0.5, DataSE: 0.2,
			Distribution: kind,
			UniformMin:   params.Min,
			UniformMax:   params.Max,
			Mode:         params.Mode,
			SD:           params.SD,
			Half:         halfPtrOrNil(params.Half),
		})
		if err != nil {
			t.Fatalf("%s: explicit computation failed: %v", kind, err)
		}
		if derived.BF != explicit.BF {
			t.Errorf("%s: round trip changed BF: %v vs %v", kind, derived.BF, explicit.BF)
		}
	}
}

func halfPtrOrNil(h Half) *Half {
	if h == "" {
		return nil
	}
	return &h
}
