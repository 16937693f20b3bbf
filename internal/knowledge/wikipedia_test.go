package knowledge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/truthlens/truthlens/internal/model"
)

func newTestClient(serverURL string) *Client {
	return NewClient(model.KnowledgeConfig{
		BaseURL:     serverURL,
		Timeout:     5 * time.Second,
		CacheTTL:    time.Minute,
		RatePerSec:  100,
		SearchLimit: 3,
	}, "test-agent")
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") != "search" {
			t.Errorf("Expected list=search, got %s", q.Get("list"))
		}
		if q.Get("srsearch") != "Paris" {
			t.Errorf("Expected srsearch=Paris, got %s", q.Get("srsearch"))
		}
		fmt.Fprint(w, `{"query":{"search":[{"title":"Paris","pageid":1},{"title":"Paris, Texas","pageid":2}]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	results, err := client.Search(context.Background(), "Paris", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Paris" {
		t.Errorf("Expected first result Paris, got %s", results[0].Title)
	}
}

func TestClient_Search_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"search":[]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "xyzzy", 3)
	if err == nil {
		t.Fatal("Expected error for empty results")
	}

	var lerr *model.LookupError
	if !errors.As(err, &lerr) {
		t.Errorf("Expected LookupError, got %T", err)
	}
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"1":{"title":"Paris","extract":"Paris is the capital of France.\n\nHistory section here.","fullurl":"https://en.wikipedia.org/wiki/Paris"}}}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := client.Fetch(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.URL != "https://en.wikipedia.org/wiki/Paris" {
		t.Errorf("Unexpected URL: %s", page.URL)
	}
	if page.Summary != "Paris is the capital of France." {
		t.Errorf("Unexpected summary: %q", page.Summary)
	}
	if page.Content == page.Summary {
		t.Error("Expected content to include more than the lead section")
	}
}

func TestClient_Fetch_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"-1":{"title":"Nope","missing":{}}}}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.Fetch(context.Background(), "Nope"); err == nil {
		t.Fatal("Expected error for missing page")
	}
}

func TestClient_Fetch_CachesPages(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"query":{"pages":{"1":{"title":"Paris","extract":"Paris is the capital of France.","fullurl":"https://en.wikipedia.org/wiki/Paris"}}}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < 3; i++ {
		if _, err := client.Fetch(context.Background(), "Paris"); err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("Expected 1 upstream hit with caching, got %d", hits.Load())
	}
}
