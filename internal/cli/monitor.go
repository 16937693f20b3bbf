package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/truthlens/truthlens/internal/monitor"
	"github.com/truthlens/truthlens/internal/pipeline"
)

var (
	monitorKeywords  []string
	monitorThreshold float64
	trendingTopic    string
	trendingLimit    int
)

// monitors is the process-wide registry. CLI invocations are
// short-lived so this mirrors the in-memory server behavior.
var monitors = monitor.NewRegistry()

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Keyword monitors and trending misinformation",
}

var monitorSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Register a keyword monitor",
	Long: `Setup registers a monitoring alert for specific keywords and prints
the stored configuration.

Example:
  truthlens monitor setup --keywords vaccine,autism --threshold 0.7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := monitors.Setup(monitorKeywords, monitorThreshold)
		if err != nil {
			return err
		}
		return pipeline.NewRenderer().JSON(os.Stdout, m)
	},
}

var monitorTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending misinformation claims",
	Long: `Trending lists misinformation claims with high spread and low
veracity, optionally filtered by topic.

Example:
  truthlens monitor trending
  truthlens monitor trending --topic health --limit 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		claims := monitor.Trending(trendingTopic, trendingLimit)
		return pipeline.NewRenderer().JSON(os.Stdout, claims)
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.AddCommand(monitorSetupCmd)
	monitorCmd.AddCommand(monitorTrendingCmd)

	monitorSetupCmd.Flags().StringSliceVar(&monitorKeywords, "keywords", nil, "keywords to monitor (comma separated)")
	monitorSetupCmd.Flags().Float64Var(&monitorThreshold, "threshold", monitor.DefaultThreshold, "confidence threshold for alerts (0-1)")

	monitorTrendingCmd.Flags().StringVar(&trendingTopic, "topic", "", "filter by topic")
	monitorTrendingCmd.Flags().IntVar(&trendingLimit, "limit", 5, "maximum number of results")
}
