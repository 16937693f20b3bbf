package model

import "time"

// Claim represents a discrete factual assertion extracted from text
type Claim struct {
	ID         string    `json:"id"`                   // Sequential within one extraction call (e.g., "claim_1")
	Text       string    `json:"text"`                 // The asserted statement, trimmed
	Confidence float64   `json:"confidence"`           // Extraction-time plausibility in [0,1]
	Method     string    `json:"extraction_method"`    // How the claim was obtained
	SourceURL  string    `json:"source_url,omitempty"` // Origin reference, empty for direct text input
	ExtractedAt time.Time `json:"extraction_date"`

	// Verification is attached after the claim has been verified (at most one)
	Verification *Verification `json:"verification,omitempty"`
}

// Extraction method provenance tags
const (
	ExtractionOracle    = "oracle"         // Generative oracle produced the claim
	ExtractionHeuristic = "heuristic"      // Lexical pattern fallback
	ExtractionOverride  = "fixed_override" // Injected by a policy table entry
)
