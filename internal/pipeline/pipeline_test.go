package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/truthlens/truthlens/internal/model"
)

type fakeFetcher struct {
	result *FetchResult
	err    error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	return f.result, f.err
}

func newTestPipeline(fetcher ContentFetcher, workers int) *Pipeline {
	cfg := model.DefaultConfig()
	cfg.Concurrency.VerifyWorkers = workers
	p := New(cfg, nil, nil)
	p.fetcher = fetcher
	return p
}

func TestAnalyzeSource_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: &model.FetchError{URL: "https://example.com", Err: context.DeadlineExceeded}}
	p := newTestPipeline(fetcher, 1)

	analysis := p.AnalyzeSource(context.Background(), "https://example.com")
	if analysis.Error == "" {
		t.Error("Expected error field set on fetch failure")
	}
	if analysis.ClaimsFound != 0 {
		t.Errorf("Expected 0 claims, got %d", analysis.ClaimsFound)
	}
	if analysis.Credibility != nil {
		t.Error("Expected no credibility on a failed fetch")
	}
}

func TestAnalyzeSource_HeuristicEndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{result: &FetchResult{
		URL:    "https://example.com/a",
		Title:  "Study Findings",
		Domain: "example.com",
		Text:   "Studies show this leads to increased risk. The weather was pleasant.",
	}}
	p := newTestPipeline(fetcher, 1)

	analysis := p.AnalyzeSource(context.Background(), "https://example.com/a")
	if analysis.Error != "" {
		t.Fatalf("Unexpected error: %s", analysis.Error)
	}
	if analysis.Title != "Study Findings" || analysis.SourceDomain != "example.com" {
		t.Errorf("Expected fetch metadata carried over, got %+v", analysis)
	}
	if analysis.ClaimsFound != 1 {
		t.Fatalf("Expected 1 claim, got %d", analysis.ClaimsFound)
	}
	if analysis.ClaimsVerified != 1 {
		t.Errorf("Expected 1 verification, got %d", analysis.ClaimsVerified)
	}

	vc := analysis.VerifiedClaims[0]
	if vc.Confidence != 0.95 {
		t.Errorf("Expected extraction confidence 0.95, got %f", vc.Confidence)
	}
	// No oracle, no knowledge source: the claim stays Unverified
	if vc.Verification.Status != model.StatusUnverified {
		t.Errorf("Expected Unverified, got %s", vc.Verification.Status)
	}

	// T=0, F=0: neutral credibility
	if analysis.Credibility == nil || analysis.Credibility.Score != 0.5 {
		t.Errorf("Expected neutral credibility, got %+v", analysis.Credibility)
	}
}

func TestAnalyzeSource_OverridesFlowThrough(t *testing.T) {
	fetcher := &fakeFetcher{result: &FetchResult{
		URL:  "https://example.com/v",
		Text: "A report on vaccine uptake in rural districts.",
	}}
	p := newTestPipeline(fetcher, 1)

	analysis := p.AnalyzeSource(context.Background(), "https://example.com/v")

	var overrideClaim *model.VerifiedClaim
	for i := range analysis.VerifiedClaims {
		if analysis.VerifiedClaims[i].ClaimText == "Vaccines cause autism." {
			overrideClaim = &analysis.VerifiedClaims[i]
		}
	}
	if overrideClaim == nil {
		t.Fatal("Expected the fixed override claim in the report")
	}
	if overrideClaim.Verification.Status != model.StatusFalse {
		t.Errorf("Expected override verification False, got %s", overrideClaim.Verification.Status)
	}
	if len(overrideClaim.Verification.Evidence) != 2 || len(overrideClaim.Verification.Sources) != 2 {
		t.Error("Expected the fixed evidence and sources")
	}

	// One False claim drags credibility below neutral
	if analysis.Credibility.Score >= 0.5 {
		t.Errorf("Expected credibility below 0.5, got %f", analysis.Credibility.Score)
	}
}

func TestAnalyzeSource_ConcurrentVerification(t *testing.T) {
	text := "Deforestation causes soil erosion. Smoking causes cancer. " +
		"Overfishing leads to collapse of stocks. Heat waves cause crop failure. " +
		"Poor drainage leads to flooding downstream."
	fetcher := &fakeFetcher{result: &FetchResult{URL: "https://example.com/c", Text: text}}
	p := newTestPipeline(fetcher, 4)

	analysis := p.AnalyzeSource(context.Background(), "https://example.com/c")
	if analysis.ClaimsFound != 5 {
		t.Fatalf("Expected 5 claims, got %d", analysis.ClaimsFound)
	}
	if analysis.ClaimsVerified != 5 {
		t.Fatalf("Expected 5 verifications, got %d", analysis.ClaimsVerified)
	}
	for i, vc := range analysis.VerifiedClaims {
		if vc.Verification == nil {
			t.Errorf("Claim %d missing verification", i)
		}
		if vc.Verification.Claim != vc.ClaimText {
			t.Errorf("Claim %d: verification written to wrong slot: %q vs %q", i, vc.Verification.Claim, vc.ClaimText)
		}
	}
}

func TestAnalyzeSource_AttachesToStore(t *testing.T) {
	fetcher := &fakeFetcher{result: &FetchResult{URL: "u", Text: "Deforestation causes soil erosion."}}
	p := newTestPipeline(fetcher, 1)

	p.AnalyzeSource(context.Background(), "u")

	c, ok := p.Claims().Get("claim_1")
	if !ok {
		t.Fatal("Expected claim_1 in store")
	}
	if c.Verification == nil {
		t.Error("Expected verification attached to stored claim")
	}
}

func TestRenderer_SummaryAndJSON(t *testing.T) {
	r := NewRenderer()

	analysis := &model.SourceAnalysis{
		URL:         "https://example.com",
		Title:       "T",
		ClaimsFound: 1,
		VerifiedClaims: []model.VerifiedClaim{
			{ClaimText: "c", Confidence: 0.9, Verification: model.NewVerification("c")},
		},
		Credibility: &model.Credibility{Score: 0.5, Reasoning: "r"},
	}

	var buf bytes.Buffer
	r.Summary(&buf, analysis)
	out := buf.String()
	if !strings.Contains(out, "Credibility: 0.50") {
		t.Errorf("Expected credibility line, got %q", out)
	}

	buf.Reset()
	if err := r.JSON(&buf, analysis); err != nil {
		t.Fatalf("JSON render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"claims_found": 1`) {
		t.Errorf("Expected claims_found in JSON, got %s", buf.String())
	}
}
