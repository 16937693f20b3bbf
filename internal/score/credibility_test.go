package score

import (
	"math"
	"testing"

	"github.com/truthlens/truthlens/internal/model"
)

func verificationsWith(statuses ...model.VerificationStatus) []*model.Verification {
	out := make([]*model.Verification, len(statuses))
	for i, s := range statuses {
		v := model.NewVerification("c")
		v.Status = s
		out[i] = v
	}
	return out
}

func TestCredibility_EmptyInputIsNeutral(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Credibility(nil)
	if result.Score != 0.5 {
		t.Errorf("Expected 0.5 for empty input, got %f", result.Score)
	}
	if result.Reasoning != Reasoning {
		t.Errorf("Expected static reasoning, got %q", result.Reasoning)
	}
}

func TestCredibility_AllTrueClampsHigh(t *testing.T) {
	scorer := NewScorer()

	// T=3, F=0, N=3: raw 0.5 + 0.5 = 1.0, clamped to 0.99
	result := scorer.Credibility(verificationsWith(
		model.StatusTrue, model.StatusTrue, model.StatusTrue,
	))
	if result.Score != 0.99 {
		t.Errorf("Expected 0.99, got %f", result.Score)
	}
}

func TestCredibility_AllFalseClampsLow(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Credibility(verificationsWith(
		model.StatusFalse, model.StatusFalse,
	))
	if result.Score != 0.01 {
		t.Errorf("Expected 0.01, got %f", result.Score)
	}
}

func TestCredibility_NeutralStatusesStayNeutral(t *testing.T) {
	scorer := NewScorer()

	// T=0, F=0, N=5: all PartiallyTrue/Unverified
	result := scorer.Credibility(verificationsWith(
		model.StatusPartiallyTrue, model.StatusPartiallyTrue,
		model.StatusUnverified, model.StatusUnverified, model.StatusUnverified,
	))
	if result.Score != 0.5 {
		t.Errorf("Expected 0.5, got %f", result.Score)
	}
}

func TestCredibility_MixedBalance(t *testing.T) {
	scorer := NewScorer()

	// T=2, F=1, N=4: 0.5 + 1/8 = 0.625
	result := scorer.Credibility(verificationsWith(
		model.StatusTrue, model.StatusTrue, model.StatusFalse, model.StatusUnverified,
	))
	if math.Abs(result.Score-0.625) > 1e-9 {
		t.Errorf("Expected 0.625, got %f", result.Score)
	}
}

func TestCredibility_AlwaysBounded(t *testing.T) {
	scorer := NewScorer()

	statuses := []model.VerificationStatus{
		model.StatusTrue, model.StatusFalse,
		model.StatusPartiallyTrue, model.StatusUnverified,
	}

	// Exhaustive small combinations
	for _, a := range statuses {
		for _, b := range statuses {
			for _, c := range statuses {
				result := scorer.Credibility(verificationsWith(a, b, c))
				if result.Score < 0.01 || result.Score > 0.99 {
					t.Errorf("Score out of bounds for %v/%v/%v: %f", a, b, c, result.Score)
				}
			}
		}
	}
}

func TestCredibility_NilEntriesCountAsNeutral(t *testing.T) {
	scorer := NewScorer()

	vs := verificationsWith(model.StatusTrue)
	vs = append(vs, nil)
	result := scorer.Credibility(vs)

	// T=1, F=0, N=2: 0.5 + 0.25 = 0.75
	if math.Abs(result.Score-0.75) > 1e-9 {
		t.Errorf("Expected 0.75, got %f", result.Score)
	}
}
