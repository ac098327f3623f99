package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client is the CoinGecko API client. The simple price endpoint needs
// no API key.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new CoinGecko client.
func New() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
}

// WithBaseURL overrides the default API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// SimplePrice fetches the current USD price for a coin ID (e.g. "bitcoin").
func (c *Client) SimplePrice(ctx context.Context, coinID string) (Price, error) {
	if coinID == "" {
		return Price{}, fmt.Errorf("coingecko: coin ID is required")
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL, url.QueryEscape(coinID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Price{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Price{}, fmt.Errorf("failed to call CoinGecko API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Price{}, fmt.Errorf("coingecko API error: %d", resp.StatusCode)
	}

	var parsed map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Price{}, fmt.Errorf("failed to decode response: %w", err)
	}

	usd, ok := parsed[coinID]["usd"]
	if !ok {
		return Price{}, fmt.Errorf("coingecko: no price for coin %q", coinID)
	}
	return Price{CoinID: coinID, USD: usd}, nil
}
