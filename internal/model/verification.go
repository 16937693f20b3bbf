package model

import "time"

// VerificationStatus is the evaluated truth-status label for a claim
type VerificationStatus string

const (
	StatusUnverified    VerificationStatus = "Unverified"
	StatusTrue          VerificationStatus = "True"
	StatusFalse         VerificationStatus = "False"
	StatusPartiallyTrue VerificationStatus = "Partially True"
)

// Verification method provenance tags. Each tag records which strategy
// actually produced the final state of the record.
const (
	VerifyOracleStructured = "oracle_structured" // Strict structured oracle output
	VerifyOracleRegex      = "oracle_regex"      // Regex salvage of malformed oracle output
	VerifyKnowledgeLookup  = "knowledge_lookup"  // Encyclopedia search + term overlap
	VerifyOverride         = "fixed_override"    // Policy table entry
	VerifyHeuristicDefault = "heuristic_default" // No strategy improved the record
)

// Source is a named reference backing a verification
type Source struct {
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	RetrievedAt *time.Time `json:"retrieved,omitempty"`
}

// Verification is the evaluated record for one claim. It is created
// fresh per verification call and mutated in place as strategy stages
// run; confidence is kept clamped to [0,1] throughout.
type Verification struct {
	Claim      string             `json:"claim"`
	Status     VerificationStatus `json:"status"`
	Confidence float64            `json:"confidence_score"` // Probability the status label is correct
	Evidence   []string           `json:"evidence"`
	Sources    []Source           `json:"sources"`
	Reasoning  string             `json:"reasoning,omitempty"`
	Method     string             `json:"verification_method"`
	VerifiedAt time.Time          `json:"verification_date"`
}

// NewVerification returns the neutral starting record for a claim.
func NewVerification(claimText string) *Verification {
	return &Verification{
		Claim:      claimText,
		Status:     StatusUnverified,
		Confidence: 0.5,
		Evidence:   []string{},
		Sources:    []Source{},
		Method:     VerifyHeuristicDefault,
		VerifiedAt: time.Now().UTC(),
	}
}

// Clamp bounds a confidence value to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
