package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/truthlens/truthlens/internal/llm"
	"github.com/truthlens/truthlens/internal/model"
)

// resolveOracle fills in provider credentials from the environment and
// builds the oracle. An empty provider returns (nil, nil): the caller
// runs on heuristics alone.
func resolveOracle(ctx context.Context, cfg *model.Config) (llm.Provider, error) {
	switch cfg.Oracle.Provider {
	case "":
		return nil, nil
	case "gemini", "google":
		cfg.Oracle.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "openai":
		cfg.Oracle.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Oracle.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Oracle.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Oracle.BaseURL = baseURL
		}
	}

	return llm.NewProvider(ctx, llm.ConfigFromModel(cfg.Oracle))
}
