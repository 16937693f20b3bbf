package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthlens/truthlens/internal/knowledge"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/pipeline"
)

var (
	outJSON      string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	noRobots     bool
	oracleName   string
	oracleModel  string
	verifyWorker int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a URL for misinformation",
	Long: `Analyze fetches a web page and runs the full pipeline:
- Extract factual claims from the page content
- Verify each claim via the oracle and encyclopedia lookups
- Score the source's credibility from the verified claims

Example:
  truthlens analyze https://example.com/article
  truthlens analyze https://example.com/article --json report.json
  truthlens analyze https://example.com/article --oracle gemini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write full JSON report to path")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "TruthLens/0.1 (+https://github.com/truthlens/truthlens)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")

	// Oracle flags
	analyzeCmd.Flags().StringVar(&oracleName, "oracle", "", "oracle provider (gemini, openai, anthropic, ollama; empty disables)")
	analyzeCmd.Flags().StringVar(&oracleModel, "oracle-model", "", "oracle model name (provider default if empty)")
	analyzeCmd.Flags().IntVar(&verifyWorker, "workers", 4, "parallel claim verifications")
}

// buildAnalyzeConfig applies the analyze flags over the defaults.
func buildAnalyzeConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.VerifyWorkers = verifyWorker
	cfg.Oracle.Provider = oracleName
	cfg.Oracle.Model = oracleModel
	cfg.Output.Verbose = verbose
	return cfg
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildAnalyzeConfig()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Oracle: %s\n", orDisabled(cfg.Oracle.Provider))
		fmt.Fprintln(os.Stderr)
	}

	oracle, err := resolveOracle(ctx, cfg)
	if err != nil {
		return err
	}

	ks := knowledge.NewClient(cfg.Knowledge, cfg.HTTP.UserAgent)
	p := pipeline.New(cfg, oracle, ks)

	analysis := p.AnalyzeSource(ctx, url)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", analysis.ClaimsFound)
		fmt.Fprintf(os.Stderr, "✓ Verified %d claims\n", analysis.ClaimsVerified)
		fmt.Fprintln(os.Stderr)
	}

	r := pipeline.NewRenderer()
	r.Summary(os.Stdout, analysis)

	if outJSON != "" {
		if err := r.JSONFile(outJSON, analysis); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outJSON)
	}

	return nil
}

func orDisabled(provider string) string {
	if provider == "" {
		return "disabled"
	}
	return provider
}
