package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const DefaultBaseURL = "https://newsapi.org/v2"

// Client is the NewsAPI client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new NewsAPI client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("newsapi: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}, nil
}

// WithBaseURL overrides the default API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// TopHeadlines fetches up to limit current top headlines.
func (c *Client) TopHeadlines(ctx context.Context, limit int) ([]Headline, error) {
	if limit <= 0 {
		limit = 3
	}

	endpoint := fmt.Sprintf("%s/top-headlines?language=en&pageSize=%d", c.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call NewsAPI: %w", err)
	}
	defer resp.Body.Close()

	var parsed headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || parsed.Status != "ok" {
		return nil, fmt.Errorf("newsapi error (%d): %s", resp.StatusCode, parsed.Message)
	}

	headlines := make([]Headline, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		headlines = append(headlines, Headline{
			Title:  a.Title,
			Source: a.Source.Name,
		})
	}
	return headlines, nil
}
