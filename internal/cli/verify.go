package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthlens/truthlens/internal/knowledge"
	"github.com/truthlens/truthlens/internal/pipeline"
)

var verifyTimeout time.Duration

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <claim>",
	Short: "Verify a single factual claim",
	Long: `Verify checks one claim against the oracle and encyclopedia
lookups and prints the verification record.

Example:
  truthlens verify "The Great Wall of China is visible from space"
  truthlens verify "Paris is the capital of France" --oracle openai`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 60*time.Second, "verification timeout")
	verifyCmd.Flags().StringVar(&oracleName, "oracle", "", "oracle provider (gemini, openai, anthropic, ollama; empty disables)")
	verifyCmd.Flags().StringVar(&oracleModel, "oracle-model", "", "oracle model name (provider default if empty)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	claim := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	cfg := buildAnalyzeConfig()
	oracle, err := resolveOracle(ctx, cfg)
	if err != nil {
		return err
	}

	ks := knowledge.NewClient(cfg.Knowledge, cfg.HTTP.UserAgent)
	p := pipeline.New(cfg, oracle, ks)

	v := p.VerifyClaim(ctx, claim, "")

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Status: %s (%.2f)\n\n", v.Status, v.Confidence)
	}

	return pipeline.NewRenderer().JSON(os.Stdout, v)
}
