package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/truthlens/truthlens/internal/model"
)

func TestClient_Search_Simulated(t *testing.T) {
	client := NewClient(model.NewsConfig{}, 5*time.Second)

	articles, err := client.Search(context.Background(), "flooding", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("Expected 3 simulated articles, got %d", len(articles))
	}
	for _, a := range articles {
		if !strings.Contains(a.Title, "flooding") {
			t.Errorf("Expected title to mention query, got %q", a.Title)
		}
		if a.URL == "" || a.Source == "" {
			t.Errorf("Expected populated fields, got %+v", a)
		}
	}
}

func TestClient_Search_SimulatedCap(t *testing.T) {
	client := NewClient(model.NewsConfig{}, 5*time.Second)

	articles, err := client.Search(context.Background(), "anything", 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(articles) != 5 {
		t.Errorf("Expected simulated results capped at 5, got %d", len(articles))
	}
}

func TestClient_Search_Live(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("Expected path /everything, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "k" {
			t.Errorf("Expected apiKey=k, got %s", r.URL.Query().Get("apiKey"))
		}
		fmt.Fprint(w, `{"articles":[{"title":"Dam breached","url":"https://news.example/1","source":{"name":"Example News"},"publishedAt":"2026-08-01T00:00:00Z"}]}`)
	}))
	defer server.Close()

	client := NewClient(model.NewsConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)
	articles, err := client.Search(context.Background(), "dam", 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(articles) != 1 || articles[0].Source != "Example News" {
		t.Errorf("Unexpected articles: %+v", articles)
	}
}

func TestClient_Search_LiveError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(model.NewsConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)
	if _, err := client.Search(context.Background(), "dam", 10); err == nil {
		t.Error("Expected error for non-200 response")
	}
}
