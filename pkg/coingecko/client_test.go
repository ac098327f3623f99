package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chatbot/pkg/coingecko"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ids") == "notacoin" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"bitcoin": {"usd": 64123.5}}`))
	}))
	defer ts.Close()

	t.Run("Simple Price Success", func(t *testing.T) {
		client := coingecko.New().WithBaseURL(ts.URL)

		price, err := client.SimplePrice(ctx, "bitcoin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price.CoinID != "bitcoin" || price.USD != 64123.5 {
			t.Errorf("unexpected price: %+v", price)
		}
	})

	t.Run("Unknown Coin", func(t *testing.T) {
		client := coingecko.New().WithBaseURL(ts.URL)

		_, err := client.SimplePrice(ctx, "notacoin")
		if err == nil || !strings.Contains(err.Error(), "no price") {
			t.Fatalf("expected no price error, got: %v", err)
		}
	})

	t.Run("Empty Coin ID", func(t *testing.T) {
		client := coingecko.New().WithBaseURL(ts.URL)
		if _, err := client.SimplePrice(ctx, ""); err == nil {
			t.Fatalf("expected error for empty coin ID")
		}
	})
}
