package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/truthlens/truthlens/internal/model"
)

func TestOpenAIProvider_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "The Eiffel Tower is in Paris.",
					},
					FinishReason: "stop",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Expected no error creating provider, got %v", err)
	}

	text, err := provider.Generate(context.Background(), "Where is the Eiffel Tower?")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "The Eiffel Tower is in Paris." {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestOpenAIProvider_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "bad-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Expected no error creating provider, got %v", err)
	}

	_, err = provider.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error from API failure")
	}

	var oerr *model.OracleError
	if !errors.As(err, &oerr) {
		t.Errorf("Expected OracleError, got %T", err)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error for disabled provider, got %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when disabled")
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "watson"}); err == nil {
		t.Error("Expected error for unknown provider name")
	}

	p, err = NewProvider(context.Background(), Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error for ollama, got %v", err)
	}
	if p == nil || p.Name() != "ollama" {
		t.Error("Expected ollama provider")
	}
}
