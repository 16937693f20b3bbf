package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/truthlens/truthlens/internal/cache"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/util"
)

// Page content is truncated so a single large page cannot flood the
// extraction prompt downstream.
const contentCeiling = 5000

// FetchResult is the extracted content of one page
type FetchResult struct {
	URL         string `json:"url"`
	FinalURL    string `json:"final_url"`
	Title       string `json:"title,omitempty"`
	Text        string `json:"text"`
	PublishedAt string `json:"published_at,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// Fetcher retrieves a URL and extracts its readable text
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil disables robots checking
	results    cache.Cache         // nil disables caching
	cacheCfg   model.CacheConfig
}

// NewFetcher creates a fetcher from configuration.
func NewFetcher(httpCfg model.HTTPConfig, cacheCfg model.CacheConfig) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: httpCfg.UserAgent,
		maxBytes:  httpCfg.MaxBodyBytes,
		cacheCfg:  cacheCfg,
	}

	if httpCfg.RespectRobots {
		f.robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}
	if cacheCfg.Enabled {
		f.results = cache.NewMemory(cacheCfg.TTL)
	}

	return f
}

// Fetch retrieves and extracts a page. All failures come back as a
// FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.Key(rawURL)
	if f.results != nil {
		if data, ok := f.results.Get(key); ok {
			var cached FetchResult
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err == nil && !allowed {
			return nil, &model.FetchError{URL: rawURL, Err: fmt.Errorf("disallowed by robots.txt")}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &model.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &model.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &model.FetchError{URL: rawURL, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, &model.FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	result := extractContent(string(body))
	result.URL = rawURL
	result.FinalURL = resp.Request.URL.String()
	if parsed, err := url.Parse(result.FinalURL); err == nil {
		result.Domain = parsed.Host
	}

	if f.results != nil {
		if data, err := json.Marshal(result); err == nil {
			f.results.Set(key, data, f.cacheCfg.TTL)
		}
	}

	return result, nil
}

// extractContent pulls the title, paragraph text, and publication meta
// out of an HTML document. A page without paragraph markup falls back
// to all visible text.
func extractContent(htmlContent string) *FetchResult {
	result := &FetchResult{}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		result.Text = truncate(htmlContent, contentCeiling)
		return result
	}

	var paragraphs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "title":
				if result.Title == "" {
					result.Title = strings.TrimSpace(nodeText(n))
				}
			case "p":
				if text := strings.TrimSpace(nodeText(n)); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			case "meta":
				if attr(n, "property") == "article:published_time" {
					result.PublishedAt = attr(n, "content")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(paragraphs, "\n\n")
	if text == "" {
		text = visibleText(doc)
	}
	result.Text = truncate(text, contentCeiling)

	return result
}

// nodeText concatenates the text nodes under n.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// visibleText extracts all text nodes, skipping non-content elements.
func visibleText(doc *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(buf.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
