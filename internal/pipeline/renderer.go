package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/truthlens/truthlens/internal/model"
)

// Renderer writes analysis output
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONFile writes v as indented JSON to a file path.
func (r *Renderer) JSONFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return r.JSON(f, v)
}

// Summary writes a short human-readable digest of an analysis.
func (r *Renderer) Summary(w io.Writer, a *model.SourceAnalysis) {
	fmt.Fprintf(w, "Source: %s\n", a.URL)
	if a.Title != "" {
		fmt.Fprintf(w, "Title:  %s\n", a.Title)
	}
	if a.Error != "" {
		fmt.Fprintf(w, "Error:  %s\n", a.Error)
		return
	}

	fmt.Fprintf(w, "Claims: %d found, %d verified\n", a.ClaimsFound, a.ClaimsVerified)
	for _, vc := range a.VerifiedClaims {
		status := model.StatusUnverified
		confidence := 0.0
		if vc.Verification != nil {
			status = vc.Verification.Status
			confidence = vc.Verification.Confidence
		}
		fmt.Fprintf(w, "  [%s %.2f] %s\n", status, confidence, vc.ClaimText)
	}
	if a.Credibility != nil {
		fmt.Fprintf(w, "Credibility: %.2f (%s)\n", a.Credibility.Score, a.Credibility.Reasoning)
	}
}
