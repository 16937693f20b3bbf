// Package extract turns raw text into discrete claim records. The
// oracle path is tried first when a provider is configured; the
// heuristic path takes over whenever the oracle yields nothing.
// Extraction never fails: any internal error degrades to the fallback
// and, at worst, an empty result.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/truthlens/truthlens/internal/heuristic"
	"github.com/truthlens/truthlens/internal/llm"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/policy"
	"github.com/truthlens/truthlens/internal/store"
)

// Prompt input is truncated to stay inside oracle token limits.
const promptCeiling = 4000

// The oracle signals an assertion-free text with this exact line.
const noClaimsSentinel = "No claims found."

// Confidence assigned to oracle-extracted claims. The oracle path does
// not produce a graded confidence.
const oracleConfidence = 0.85

var ordinalPrefixRe = regexp.MustCompile(`^\d+\.\s*`)

// ClaimExtractor extracts claims from text
type ClaimExtractor struct {
	oracle    llm.Provider // nil disables the oracle stage
	overrides []policy.ExtractionOverride
	claims    *store.ClaimStore
}

// NewClaimExtractor creates a claim extractor. The oracle may be nil;
// extracted claims are recorded in the given store.
func NewClaimExtractor(oracle llm.Provider, overrides []policy.ExtractionOverride, claims *store.ClaimStore) *ClaimExtractor {
	return &ClaimExtractor{
		oracle:    oracle,
		overrides: overrides,
		claims:    claims,
	}
}

// Extract produces the ordered claim list for a text. Ids are assigned
// sequentially from claim_1 within this call.
func (e *ClaimExtractor) Extract(ctx context.Context, text, sourceURL string) []model.Claim {
	var claims []model.Claim
	nextID := 1

	emit := func(claimText string, confidence float64, method string) {
		c := model.Claim{
			ID:          fmt.Sprintf("claim_%d", nextID),
			Text:        claimText,
			Confidence:  model.Clamp(confidence),
			Method:      method,
			SourceURL:   sourceURL,
			ExtractedAt: time.Now().UTC(),
		}
		claims = append(claims, c)
		e.claims.Put(&c)
		nextID++
	}

	if e.oracle != nil {
		for _, line := range e.oracleClaims(ctx, text) {
			emit(line, oracleConfidence, model.ExtractionOracle)
		}
	}

	if len(claims) == 0 {
		for _, sentence := range heuristic.SplitSentences(text) {
			confidence, _, ok := heuristic.ScoreSentence(sentence)
			if !ok {
				continue
			}
			emit(sentence, confidence, model.ExtractionHeuristic)
		}
	}

	// Policy overrides are additive on top of whichever stage ran.
	for _, o := range e.overrides {
		if o.Matches(text) {
			emit(o.ClaimText, o.Confidence, model.ExtractionOverride)
		}
	}

	return claims
}

// oracleClaims asks the oracle for one claim per line and parses the
// response. Any oracle failure yields an empty list, not an error.
func (e *ClaimExtractor) oracleClaims(ctx context.Context, text string) []string {
	response, err := e.oracle.Generate(ctx, buildExtractionPrompt(text))
	if err != nil {
		return nil
	}

	var out []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == noClaimsSentinel {
			continue
		}
		line = ordinalPrefixRe.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func buildExtractionPrompt(text string) string {
	if len(text) > promptCeiling {
		text = text[:promptCeiling]
	}
	return fmt.Sprintf(`Extract factual claims from the following text. A factual claim is an assertion that can be verified as true or false. Return ONLY the claims, one per line.
If no clear factual claims are found, return "%s"

TEXT: %s

FACTUAL CLAIMS:
`, noClaimsSentinel, text)
}
