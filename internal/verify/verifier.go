// Package verify evaluates a single claim into a verification record.
// Strategies run as an ordered chain: the oracle stage always attempts
// first when configured, and each later stage runs only while the
// record still has no evidence. Stage failures are swallowed at the
// stage boundary; Verify never returns an error to its caller.
package verify

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/truthlens/truthlens/internal/heuristic"
	"github.com/truthlens/truthlens/internal/knowledge"
	"github.com/truthlens/truthlens/internal/llm"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/policy"
	"github.com/truthlens/truthlens/internal/store"
)

// Evidence is accepted from a reference document when at least this
// fraction of the claim's key terms appear in it.
const overlapThreshold = 0.7

// Reference excerpts recorded as evidence are cut to this length.
const excerptLimit = 500

// KnowledgeSource is the encyclopedia lookup the verifier consults.
type KnowledgeSource interface {
	Search(ctx context.Context, query string, limit int) ([]knowledge.SearchResult, error)
	Fetch(ctx context.Context, title string) (*knowledge.Page, error)
}

// Verifier turns claim text into a Verification record
type Verifier struct {
	oracle      llm.Provider    // nil disables the oracle stage
	knowledge   KnowledgeSource // nil disables the lookup stage
	overrides   []policy.VerificationOverride
	claims      *store.ClaimStore
	searchLimit int
}

// NewVerifier creates a verifier. Oracle and knowledge source may each
// be nil; verifications are attached to claims in the given store.
func NewVerifier(oracle llm.Provider, ks KnowledgeSource, overrides []policy.VerificationOverride, claims *store.ClaimStore, searchLimit int) *Verifier {
	if searchLimit <= 0 {
		searchLimit = 3
	}
	return &Verifier{
		oracle:      oracle,
		knowledge:   ks,
		overrides:   overrides,
		claims:      claims,
		searchLimit: searchLimit,
	}
}

// Verify evaluates a claim. When claimID resolves in the store, the
// stored claim text wins over the supplied text and the result is
// attached to the claim (overwriting any prior verification).
func (v *Verifier) Verify(ctx context.Context, claimText, claimID string) *model.Verification {
	if claimID != "" {
		if c, ok := v.claims.Get(claimID); ok {
			claimText = c.Text
		}
	}

	verification := model.NewVerification(claimText)

	if v.oracle != nil {
		v.oracleStage(ctx, verification)
	}

	if len(verification.Evidence) == 0 && v.knowledge != nil {
		v.knowledgeStage(ctx, verification)
	}

	for _, o := range v.overrides {
		if o.Matches(verification.Claim) {
			applyOverride(verification, o)
		}
	}

	resolveStatus(verification)

	if claimID != "" {
		v.claims.Attach(claimID, verification)
	}

	return verification
}

// oracleVerdict is the structured shape the oracle is asked for
type oracleVerdict struct {
	Status     string   `json:"status"`
	Confidence *float64 `json:"confidence_score"` // Pointer so a missing field keeps the neutral prior
	Evidence   []string `json:"evidence"`
	Reasoning  string   `json:"reasoning"`
}

// oracleStage asks the oracle for a structured verdict. Strict JSON
// parsing is attempted first; malformed output is salvaged by regex.
// Oracle call failures leave the record untouched.
func (v *Verifier) oracleStage(ctx context.Context, verification *model.Verification) {
	response, err := v.oracle.Generate(ctx, buildVerificationPrompt(verification.Claim))
	if err != nil {
		return
	}

	var verdict oracleVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &verdict); err == nil {
		if verdict.Status != "" {
			verification.Status = model.VerificationStatus(verdict.Status)
		}
		if verdict.Confidence != nil {
			verification.Confidence = model.Clamp(*verdict.Confidence)
		}
		if len(verdict.Evidence) > 0 {
			verification.Evidence = verdict.Evidence
		}
		verification.Reasoning = verdict.Reasoning
		verification.Method = model.VerifyOracleStructured
		return
	}

	// ParseError path: best-effort field extraction from the raw text.
	salvageVerdict(response, verification)
}

var (
	statusRe     = regexp.MustCompile(`"status":\s*"([^"]+)"`)
	confidenceRe = regexp.MustCompile(`"confidence_score":\s*([\d.]+)`)
	quotedRe     = regexp.MustCompile(`"([^"]+)"`)
)

// salvageVerdict pulls status, confidence, and up to 3 quoted strings
// out of a malformed structured response.
func salvageVerdict(response string, verification *model.Verification) {
	if m := statusRe.FindStringSubmatch(response); m != nil {
		verification.Status = model.VerificationStatus(m[1])
	}
	if m := confidenceRe.FindStringSubmatch(response); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			verification.Confidence = model.Clamp(f)
		}
	}
	if matches := quotedRe.FindAllStringSubmatch(response, -1); len(matches) > 0 {
		evidence := make([]string, 0, 3)
		for _, m := range matches {
			if len(evidence) >= 3 {
				break
			}
			evidence = append(evidence, m[1])
		}
		verification.Evidence = evidence
	}
	verification.Method = model.VerifyOracleRegex
}

// knowledgeStage looks the claim up in the knowledge source, records
// the top result as a source, and accepts an excerpt as evidence when
// the claim's key terms overlap the reference text strongly enough.
// Lookup failures leave the record untouched.
func (v *Verifier) knowledgeStage(ctx context.Context, verification *model.Verification) {
	results, err := v.knowledge.Search(ctx, verification.Claim, v.searchLimit)
	if err != nil || len(results) == 0 {
		return
	}

	page, err := v.knowledge.Fetch(ctx, results[0].Title)
	if err != nil {
		return
	}

	now := time.Now().UTC()
	verification.Sources = append(verification.Sources, model.Source{
		Name:        "Wikipedia",
		URL:         page.URL,
		RetrievedAt: &now,
	})

	ratio := heuristic.TermOverlap(verification.Claim, page.Content)
	if ratio > overlapThreshold {
		excerpt := page.Summary
		if len(excerpt) > excerptLimit {
			excerpt = excerpt[:excerptLimit]
		}
		verification.Evidence = append(verification.Evidence, excerpt+"...")
		verification.Confidence = model.Clamp(0.6 + ratio*0.3)
		verification.Method = model.VerifyKnowledgeLookup
	}
}

// applyOverride forces the record into the override's outcome,
// replacing whatever earlier stages produced.
func applyOverride(verification *model.Verification, o policy.VerificationOverride) {
	verification.Status = o.Status
	verification.Confidence = model.Clamp(o.Confidence)
	verification.Evidence = append([]string(nil), o.Evidence...)
	verification.Sources = append([]model.Source(nil), o.Sources...)
	verification.Method = model.VerifyOverride
}

// resolveStatus maps confidence onto a status label for records the
// stages left Unverified but evidenced.
func resolveStatus(verification *model.Verification) {
	if verification.Status != model.StatusUnverified || len(verification.Evidence) == 0 {
		return
	}
	switch {
	case verification.Confidence > 0.8:
		verification.Status = model.StatusTrue
	case verification.Confidence < 0.2:
		verification.Status = model.StatusFalse
	default:
		verification.Status = model.StatusPartiallyTrue
	}
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")

func stripCodeFence(s string) string {
	return codeFenceRe.ReplaceAllString(strings.TrimSpace(s), "")
}

func buildVerificationPrompt(claimText string) string {
	return `Analyze this claim and determine its veracity. Respond in JSON format with the following fields:
status: "True", "False", "Partially True", or "Unverified"
confidence_score: A number between 0 and 1
evidence: List of evidence supporting your conclusion (1-3 items)
reasoning: Brief explanation of your conclusion

Claim: "` + claimText + `"

JSON response:`
}
