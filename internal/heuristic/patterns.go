// Package heuristic provides the deterministic lexical scoring used
// when no generative oracle is available: claim-likelihood patterns for
// extraction and a term-overlap scorer for evidence relevance. All
// functions are pure so they can be tested without mocks.
package heuristic

import (
	"regexp"
	"strings"
)

// Base confidence assigned to a sentence before pattern boosts.
const baseConfidence = 0.5

// Pattern boosts are capped so no heuristic claim claims certainty.
const maxConfidence = 0.95

// ClaimPattern is one entry in the ordered claim-likelihood table.
// Patterns are tried in order and only the first match counts.
type ClaimPattern struct {
	Name  string
	Re    *regexp.Regexp
	Boost float64
}

// claimPatterns matches the sentence forms that tend to carry factual
// assertions. The alternations are intentionally loose substrings
// rather than word-bounded tokens.
var claimPatterns = []ClaimPattern{
	{Name: "action_state", Re: regexp.MustCompile(`(is|are|was|were)\s+([a-z]+ing|[a-z]+ed)`), Boost: 0.7},
	{Name: "causal", Re: regexp.MustCompile(`(cause[s]?|lead[s]? to)`), Boost: 0.8},
	{Name: "evidentiary", Re: regexp.MustCompile(`according to|study|research`), Boost: 0.75},
	{Name: "universal", Re: regexp.MustCompile(`all|none|every|always|never`), Boost: 0.9},
}

// ScoreSentence tests a sentence against the claim-likelihood patterns
// in order. On the first match it returns the boosted confidence
// (capped at 0.95) and the pattern name; a sentence matching nothing
// reports ok=false and should not be emitted as a claim.
func ScoreSentence(sentence string) (confidence float64, pattern string, ok bool) {
	lower := strings.ToLower(sentence)
	for _, p := range claimPatterns {
		if p.Re.MatchString(lower) {
			c := baseConfidence + p.Boost
			if c > maxConfidence {
				c = maxConfidence
			}
			return c, p.Name, true
		}
	}
	return 0, "", false
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]`)

// SplitSentences splits raw text on sentence-terminal punctuation and
// drops trimmed fragments shorter than 10 characters.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) < 10 {
			continue
		}
		sentences = append(sentences, s)
	}
	return sentences
}

var keyTermRe = regexp.MustCompile(`\b\w{4,}\b`)

// KeyTerms extracts the lower-cased word tokens of length >= 4 from a
// claim. These drive the overlap scorer.
func KeyTerms(text string) []string {
	return keyTermRe.FindAllString(strings.ToLower(text), -1)
}

// TermOverlap computes the fraction of a claim's key terms present in
// the reference text. Presence is a substring test against the
// lower-cased reference. Returns 0 when the claim has no key terms.
func TermOverlap(claimText, referenceText string) float64 {
	terms := KeyTerms(claimText)
	if len(terms) == 0 {
		return 0
	}
	content := strings.ToLower(referenceText)
	matched := 0
	for _, term := range terms {
		if strings.Contains(content, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}
