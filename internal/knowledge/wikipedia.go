// Package knowledge provides the encyclopedia lookup collaborator used
// as secondary evidence by the verifier. The concrete client talks to
// the MediaWiki API; results are cached and requests rate limited.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/truthlens/truthlens/internal/cache"
	"github.com/truthlens/truthlens/internal/model"
)

// SearchResult is one candidate article for a query
type SearchResult struct {
	Title  string `json:"title"`
	PageID int    `json:"pageid"`
}

// Page is a fetched reference article
type Page struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"` // Full plain text
	Summary string `json:"summary"` // Lead section
}

// Client queries the MediaWiki API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	pages      cache.Cache
	cacheTTL   time.Duration
	userAgent  string
}

// NewClient creates a knowledge client for the given API endpoint
// (e.g., https://en.wikipedia.org/w/api.php).
func NewClient(cfg model.KnowledgeConfig, userAgent string) *Client {
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 2
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(perSec), 1),
		pages:      cache.NewMemory(ttl),
		cacheTTL:   ttl,
		userAgent:  userAgent,
	}
}

// Search returns up to limit candidate articles for a query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 3
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", limit))
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}

	var parsed struct {
		Query struct {
			Search []SearchResult `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &model.LookupError{Op: "search", Query: query, Err: err}
	}

	if len(parsed.Query.Search) == 0 {
		return nil, &model.LookupError{Op: "search", Query: query, Err: fmt.Errorf("no results")}
	}
	return parsed.Query.Search, nil
}

// Fetch retrieves the full plain text of an article by title.
func (c *Client) Fetch(ctx context.Context, title string) (*Page, error) {
	key := cache.Key("page:" + title)
	if data, ok := c.pages.Get(key); ok {
		var page Page
		if json.Unmarshal(data, &page) == nil {
			return &page, nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts|info")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("inprop", "url")
	params.Set("titles", title)
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, &model.LookupError{Op: "fetch", Query: title, Err: err}
	}

	var parsed struct {
		Query struct {
			Pages map[string]struct {
				Title   string `json:"title"`
				Extract string `json:"extract"`
				FullURL string `json:"fullurl"`
				Missing *struct{} `json:"missing,omitempty"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &model.LookupError{Op: "fetch", Query: title, Err: err}
	}

	for id, p := range parsed.Query.Pages {
		if id == "-1" || p.Missing != nil || p.Extract == "" {
			continue
		}
		page := &Page{
			Title:   p.Title,
			URL:     p.FullURL,
			Content: p.Extract,
			Summary: leadSection(p.Extract),
		}
		if data, err := json.Marshal(page); err == nil {
			c.pages.Set(key, data, c.cacheTTL)
		}
		return page, nil
	}

	return nil, &model.LookupError{Op: "fetch", Query: title, Err: fmt.Errorf("page not found")}
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

// leadSection returns the text before the first blank line, which the
// plain-text extract uses to separate the lead from later sections.
func leadSection(extract string) string {
	if idx := strings.Index(extract, "\n\n"); idx > 0 {
		return strings.TrimSpace(extract[:idx])
	}
	return strings.TrimSpace(extract)
}
