package suggest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/priyanka7rc/laya/pkg/suggest"
)

func TestSuggestCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": " Fitness\n"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := suggest.NewClient(suggest.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	got, err := client.SuggestCategory(context.Background(), "go for a run")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Fitness" {
		t.Errorf("expected trimmed label %q, got %q", "Fitness", got)
	}
}

func TestSuggestCategoryAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := suggest.NewClient(suggest.Config{APIKey: "k", BaseURL: server.URL})

	if _, err := client.SuggestCategory(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSuggestCategoryEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := suggest.NewClient(suggest.Config{APIKey: "k", BaseURL: server.URL})

	if _, err := client.SuggestCategory(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
