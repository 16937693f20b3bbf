package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewProvider creates an oracle provider from configuration. An empty
// provider name returns (nil, nil): the oracle is disabled and callers
// fall back to heuristics.
func NewProvider(ctx context.Context, config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "gemini", "google":
		return NewGeminiProvider(ctx, config)

	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown oracle provider: %s (supported: gemini, openai, anthropic, ollama)", config.Provider)
	}
}
