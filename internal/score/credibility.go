// Package score reduces per-claim verification outcomes into one
// bounded credibility estimate for a source.
package score

import "github.com/truthlens/truthlens/internal/model"

// Scores never reach absolute certainty in either direction.
const (
	minCredibility = 0.01
	maxCredibility = 0.99
)

// Reasoning is the static explanation attached to every credibility
// result; the formula is symmetric so the text never varies per call.
const Reasoning = "Based on ratio of true versus false claims"

// Scorer computes source credibility
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Credibility reduces the verification outcomes for one source into a
// bounded score. An empty input yields the neutral prior 0.5;
// otherwise the score adjusts symmetrically around neutral by the
// true/false balance: 0.5 + (T - F) / (2N), clamped to [0.01, 0.99].
func (s *Scorer) Credibility(verifications []*model.Verification) model.Credibility {
	return model.Credibility{
		Score:     s.score(verifications),
		Reasoning: Reasoning,
	}
}

func (s *Scorer) score(verifications []*model.Verification) float64 {
	if len(verifications) == 0 {
		return 0.5
	}

	var trueCount, falseCount int
	for _, v := range verifications {
		if v == nil {
			continue
		}
		switch v.Status {
		case model.StatusTrue:
			trueCount++
		case model.StatusFalse:
			falseCount++
		}
	}

	n := float64(len(verifications))
	credibility := 0.5 + float64(trueCount-falseCount)/(2*n)

	if credibility < minCredibility {
		return minCredibility
	}
	if credibility > maxCredibility {
		return maxCredibility
	}
	return credibility
}
