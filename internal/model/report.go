package model

import "time"

// VerifiedClaim pairs an extracted claim with its verification outcome
type VerifiedClaim struct {
	ClaimText    string        `json:"claim_text"`
	Confidence   float64       `json:"confidence"` // Extraction-time confidence
	Verification *Verification `json:"verification"`
}

// Credibility is the aggregate trust estimate for a source
type Credibility struct {
	Score     float64 `json:"score"` // Bounded to [0.01, 0.99]
	Reasoning string  `json:"reasoning"`
}

// SourceAnalysis is the complete report for one analyzed source.
// Built once per analyze call; never persisted.
type SourceAnalysis struct {
	URL            string          `json:"url"`
	Title          string          `json:"title,omitempty"`
	SourceDomain   string          `json:"source_domain,omitempty"`
	AnalyzedAt     time.Time       `json:"analysis_date"`
	ClaimsFound    int             `json:"claims_found"`
	ClaimsVerified int             `json:"claims_verified"`
	VerifiedClaims []VerifiedClaim `json:"verified_claims"`
	Credibility    *Credibility    `json:"source_credibility,omitempty"`

	// Error is set when the fetch step failed; the rest of the report
	// is empty in that case. Never set for per-claim failures.
	Error string `json:"error,omitempty"`
}

// Article is a news search result
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at,omitempty"`
}
