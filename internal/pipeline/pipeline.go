// Package pipeline wires the fetch, extract, verify, and score steps
// into the analyze operation and owns the claim store for the process.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/truthlens/truthlens/internal/extract"
	"github.com/truthlens/truthlens/internal/llm"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/policy"
	"github.com/truthlens/truthlens/internal/score"
	"github.com/truthlens/truthlens/internal/store"
	"github.com/truthlens/truthlens/internal/verify"
)

// ContentFetcher retrieves page content for a URL
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Pipeline orchestrates the complete analysis
type Pipeline struct {
	fetcher   ContentFetcher
	extractor *extract.ClaimExtractor
	verifier  *verify.Verifier
	scorer    *score.Scorer
	claims    *store.ClaimStore
	workers   int
}

// New creates a pipeline. The oracle and knowledge source may each be
// nil; the pipeline then runs on heuristics and overrides alone.
func New(cfg *model.Config, oracle llm.Provider, ks verify.KnowledgeSource) *Pipeline {
	claims := store.New()

	workers := cfg.Concurrency.VerifyWorkers
	if workers <= 0 {
		workers = 1
	}

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP, cfg.Cache),
		extractor: extract.NewClaimExtractor(oracle, policy.DefaultExtractionOverrides(), claims),
		verifier:  verify.NewVerifier(oracle, ks, policy.DefaultVerificationOverrides(), claims, cfg.Knowledge.SearchLimit),
		scorer:    score.NewScorer(),
		claims:    claims,
		workers:   workers,
	}
}

// Claims exposes the pipeline's claim store.
func (p *Pipeline) Claims() *store.ClaimStore {
	return p.claims
}

// ExtractClaims extracts claims from raw text.
func (p *Pipeline) ExtractClaims(ctx context.Context, text, sourceURL string) []model.Claim {
	return p.extractor.Extract(ctx, text, sourceURL)
}

// VerifyClaim verifies one claim by text or stored id.
func (p *Pipeline) VerifyClaim(ctx context.Context, claimText, claimID string) *model.Verification {
	return p.verifier.Verify(ctx, claimText, claimID)
}

// AnalyzeSource runs the full pipeline for a URL. A fetch failure
// short-circuits into a report carrying the error; everything after
// the fetch degrades per claim instead of aborting.
func (p *Pipeline) AnalyzeSource(ctx context.Context, url string) *model.SourceAnalysis {
	analysis := &model.SourceAnalysis{
		URL:            url,
		AnalyzedAt:     time.Now().UTC(),
		VerifiedClaims: []model.VerifiedClaim{},
	}

	content, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		analysis.Error = err.Error()
		return analysis
	}

	analysis.Title = content.Title
	analysis.SourceDomain = content.Domain

	claims := p.extractor.Extract(ctx, content.Text, url)
	analysis.ClaimsFound = len(claims)

	verifications := p.verifyAll(ctx, claims)

	analysis.ClaimsVerified = len(verifications)
	for i, c := range claims {
		analysis.VerifiedClaims = append(analysis.VerifiedClaims, model.VerifiedClaim{
			ClaimText:    c.Text,
			Confidence:   c.Confidence,
			Verification: verifications[i],
		})
	}

	credibility := p.scorer.Credibility(verifications)
	analysis.Credibility = &credibility

	return analysis
}

// verifyAll verifies claims with bounded concurrency. Each goroutine
// writes only its own index; the scorer reduces after the join.
func (p *Pipeline) verifyAll(ctx context.Context, claims []model.Claim) []*model.Verification {
	verifications := make([]*model.Verification, len(claims))

	if p.workers <= 1 {
		for i, c := range claims {
			verifications[i] = p.verifier.Verify(ctx, c.Text, c.ID)
		}
		return verifications
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.workers)

	for i, c := range claims {
		wg.Add(1)
		go func(idx int, claim model.Claim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				verifications[idx] = model.NewVerification(claim.Text)
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			verifications[idx] = p.verifier.Verify(ctx, claim.Text, claim.ID)
		}(i, c)
	}

	wg.Wait()
	return verifications
}
