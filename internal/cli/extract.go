package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthlens/truthlens/internal/pipeline"
)

var (
	extractFile    string
	extractSource  string
	extractTimeout time.Duration
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract factual claims from text",
	Long: `Extract pulls factual claims out of raw text without fetching or
verifying anything. Claims come from the oracle when one is configured,
with a pattern heuristic as fallback.

Example:
  truthlens extract "The Earth orbits the Sun. Studies show coffee causes insomnia."
  truthlens extract --file article.txt --oracle gemini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractFile, "file", "", "read text from file instead of argument")
	extractCmd.Flags().StringVar(&extractSource, "source", "", "source URL to attach to extracted claims")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 60*time.Second, "extraction timeout")
	extractCmd.Flags().StringVar(&oracleName, "oracle", "", "oracle provider (gemini, openai, anthropic, ollama; empty disables)")
	extractCmd.Flags().StringVar(&oracleModel, "oracle-model", "", "oracle model name (provider default if empty)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInputText(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	cfg := buildAnalyzeConfig()
	oracle, err := resolveOracle(ctx, cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, oracle, nil)
	claims := p.ExtractClaims(ctx, text, extractSource)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n\n", len(claims))
	}

	return pipeline.NewRenderer().JSON(os.Stdout, claims)
}

// readInputText resolves the extract/verify input from the positional
// argument or the --file flag.
func readInputText(args []string) (string, error) {
	if extractFile != "" {
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return "", fmt.Errorf("provide text as an argument or via --file")
}
