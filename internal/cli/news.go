package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/news"
	"github.com/truthlens/truthlens/internal/pipeline"
)

var newsLimit int

// newsCmd represents the news command
var newsCmd = &cobra.Command{
	Use:   "news <topic>",
	Short: "Search recent news articles about a topic",
	Long: `News searches recent articles for a topic via NewsAPI. Without a
NEWSAPI_KEY in the environment it returns simulated placeholder results.

Example:
  truthlens news "vaccine safety"
  truthlens news elections --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: runNews,
}

func init() {
	rootCmd.AddCommand(newsCmd)

	newsCmd.Flags().IntVar(&newsLimit, "limit", 5, "maximum number of articles")
}

func runNews(cmd *cobra.Command, args []string) error {
	topic := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.News.APIKey = os.Getenv("NEWSAPI_KEY")

	client := news.NewClient(cfg.News, cfg.HTTP.Timeout)
	articles, err := client.Search(ctx, topic, newsLimit)
	if err != nil {
		return fmt.Errorf("news search: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Found %d articles\n\n", len(articles))
	}

	return pipeline.NewRenderer().JSON(os.Stdout, articles)
}
