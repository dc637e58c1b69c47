package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropic_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("Missing API key in x-api-key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("Missing anthropic-version header")
		}

		resp := anthropicResponse{
			Content: []anthropicContent{{Type: "text", Text: "gentle feedback"}},
			Usage:   anthropicUsage{InputTokens: 40, OutputTokens: 20},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey: "test-key",
		model:  "claude-haiku-4-5",
		client: &http.Client{
			Transport: &rewriteTransport{
				base:    server.Client().Transport,
				baseURL: server.URL,
			},
		},
	}

	resp, err := a.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "mentor",
		Prompt:       "rephrase this",
	})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if resp.Content != "gentle feedback" {
		t.Errorf("Content = %q, want %q", resp.Content, "gentle feedback")
	}
	if resp.TokensUsed != 60 {
		t.Errorf("TokensUsed = %d, want 60", resp.TokensUsed)
	}
}

func TestAnthropic_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(anthropicResponse{})
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey: "test-key",
		model:  "claude-haiku-4-5",
		client: &http.Client{
			Transport: &rewriteTransport{
				base:    server.Client().Transport,
				baseURL: server.URL,
			},
		},
	}

	if _, err := a.Complete(context.Background(), CompletionRequest{Prompt: "x"}); err == nil {
		t.Error("Expected error for empty content")
	}
}
