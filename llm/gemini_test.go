package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGemini(handler http.HandlerFunc) (*geminiCompleter, *httptest.Server) {
	srv := httptest.NewServer(handler)
	g := newGeminiCompleter("test-key", "")
	g.client = srv.Client()
	g.endpoint = srv.URL
	return g, srv
}

func TestGeminiComplete(t *testing.T) {
	var gotKey string
	var gotBody geminiRequest
	g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `["keyword"]`}},
				}},
			},
		})
	})
	defer srv.Close()

	got, err := g.Complete(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `["keyword"]` {
		t.Errorf("completion = %q", got)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "the prompt" {
		t.Errorf("request body wrong: %+v", gotBody)
	}
}

func TestGeminiCompleteNoCandidates(t *testing.T) {
	g, srv := newTestGemini(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})
	defer srv.Close()

	got, err := g.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("no candidates should not be an error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected an empty completion, got %q", got)
	}
}

func TestGeminiCompleteHTTPError(t *testing.T) {
	g, srv := newTestGemini(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := g.Complete(context.Background(), "p")
	if err == nil {
		t.Fatalf("expected an error on HTTP 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestNewProviderSelection(t *testing.T) {
	if _, err := New("cohere", "", ""); err == nil {
		t.Errorf("an empty API key should be rejected")
	}
	if _, err := New("mistral", "key", ""); err == nil {
		t.Errorf("an unknown provider should be rejected")
	}
	for _, provider := range []string{"cohere", "gemini"} {
		if _, err := New(provider, "key", ""); err != nil {
			t.Errorf("New(%q) failed: %v", provider, err)
		}
	}
}
