// Package news provides the news search collaborator. With an API key
// configured it queries NewsAPI; without one it returns deterministic
// simulated articles so the rest of the pipeline stays demonstrable.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/truthlens/truthlens/internal/model"
)

// Client searches news articles for a topic
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a news client. An empty API key enables simulated
// results.
func NewClient(cfg model.NewsConfig, timeout time.Duration) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://newsapi.org/v2"
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search returns up to limit articles matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Article, error) {
	if limit <= 0 {
		limit = 10
	}

	if c.apiKey == "" {
		return simulatedArticles(query, limit), nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.LookupError{Op: "search", Query: query, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}

	var parsed struct {
		Articles []struct {
			Title  string `json:"title"`
			URL    string `json:"url"`
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}

	articles := make([]model.Article, 0, limit)
	for _, a := range parsed.Articles {
		if len(articles) >= limit {
			break
		}
		articles = append(articles, model.Article{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}

// simulatedArticles mirrors the shape of real results for keyless runs.
func simulatedArticles(query string, limit int) []model.Article {
	n := limit
	if n > 5 {
		n = 5
	}
	articles := make([]model.Article, 0, n)
	for i := 1; i <= n; i++ {
		articles = append(articles, model.Article{
			Title:       fmt.Sprintf("Sample article about %s #%d", query, i),
			URL:         fmt.Sprintf("https://example.com/article%d", i),
			Source:      fmt.Sprintf("News Source %d", i),
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return articles
}
