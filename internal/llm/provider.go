// Package llm wraps the generative oracle behind a common Provider
// interface. The pipeline only ever asks the oracle for free-form text
// for a prompt; every failure mode (missing key, timeout, empty
// response) surfaces as an OracleError the callers degrade on.
package llm

import (
	"context"

	"github.com/truthlens/truthlens/internal/model"
)

// Provider is a generative-text oracle.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Generate returns the oracle's text for a prompt. Bounded by the
	// provider's configured timeout.
	Generate(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds oracle provider configuration.
type Config struct {
	// Provider name: "gemini", "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults with the oracle disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts the config-tree oracle section.
func ConfigFromModel(c model.OracleConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

func oracleErr(provider string, err error) error {
	return &model.OracleError{Provider: provider, Err: err}
}
