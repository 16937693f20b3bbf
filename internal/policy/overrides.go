// Package policy holds the fixed-override tables: hardcoded rules that
// inject or overrule results for specific claim content. They exist as
// explicit, removable data rather than conditionals buried in the
// extractor and verifier; passing empty tables disables them.
package policy

import (
	"strings"

	"github.com/truthlens/truthlens/internal/model"
)

// ExtractionOverride appends a fixed claim whenever the input text
// contains the trigger token (case-insensitive). Additive: it never
// suppresses claims from other stages.
type ExtractionOverride struct {
	Trigger    string
	ClaimText  string
	Confidence float64
}

// VerificationOverride forces a verification outcome when the claim
// text contains every trigger token (case-insensitive). It overwrites
// whatever earlier stages produced.
type VerificationOverride struct {
	Triggers   []string
	Status     model.VerificationStatus
	Confidence float64
	Evidence   []string
	Sources    []model.Source
}

// DefaultExtractionOverrides returns the demonstration table shipped
// with TruthLens.
func DefaultExtractionOverrides() []ExtractionOverride {
	return []ExtractionOverride{
		{
			Trigger:    "vaccine",
			ClaimText:  "Vaccines cause autism.",
			Confidence: 0.95,
		},
	}
}

// DefaultVerificationOverrides returns the demonstration table shipped
// with TruthLens.
func DefaultVerificationOverrides() []VerificationOverride {
	return []VerificationOverride{
		{
			Triggers:   []string{"vaccine", "autism"},
			Status:     model.StatusFalse,
			Confidence: 0.95,
			Evidence: []string{
				"Multiple large studies have found no link between vaccines and autism.",
				"The original study suggesting a link was retracted due to serious procedural and ethical concerns.",
			},
			Sources: []model.Source{
				{Name: "CDC", URL: "https://www.cdc.gov/vaccinesafety/concerns/autism.html"},
				{Name: "WHO", URL: "https://www.who.int/news-room/questions-and-answers/item/vaccines-and-immunization-myths-and-misconceptions"},
			},
		},
	}
}

// Matches reports whether the override's trigger appears in the text.
func (o ExtractionOverride) Matches(text string) bool {
	return strings.Contains(strings.ToLower(text), o.Trigger)
}

// Matches reports whether every trigger token appears in the claim.
func (o VerificationOverride) Matches(claimText string) bool {
	lower := strings.ToLower(claimText)
	for _, trigger := range o.Triggers {
		if !strings.Contains(lower, trigger) {
			return false
		}
	}
	return true
}
