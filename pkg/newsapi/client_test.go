package newsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chatbot/pkg/newsapi"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status": "error", "message": "apiKeyInvalid"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "First headline", "source": {"name": "Wire"}},
				{"title": "Second headline", "source": {"name": "Post"}}
			]
		}`))
	}))
	defer ts.Close()

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := newsapi.New(""); err == nil {
			t.Fatalf("expected error for empty API key")
		}
	})

	t.Run("Top Headlines Success", func(t *testing.T) {
		client, err := newsapi.New("test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		client.WithBaseURL(ts.URL)

		headlines, err := client.TopHeadlines(ctx, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(headlines) != 2 || headlines[0].Title != "First headline" || headlines[1].Source != "Post" {
			t.Errorf("unexpected headlines: %+v", headlines)
		}
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		client, _ := newsapi.New("wrong-key")
		client.WithBaseURL(ts.URL)

		_, err := client.TopHeadlines(ctx, 3)
		if err == nil || !strings.Contains(err.Error(), "apiKeyInvalid") {
			t.Fatalf("expected api key error, got: %v", err)
		}
	})
}
