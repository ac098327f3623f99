package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client is the OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new OpenWeatherMap client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openweather: API key is required")
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

// CurrentWeather fetches the current conditions for a city in metric units.
func (c *Client) CurrentWeather(ctx context.Context, city string) (Weather, error) {
	if city == "" {
		return Weather{}, fmt.Errorf("openweather: city is required")
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Weather{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("failed to call OpenWeatherMap API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Message != "" {
			return Weather{}, fmt.Errorf("openweather API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return Weather{}, fmt.Errorf("openweather API error: %d", resp.StatusCode)
	}

	var parsed currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Weather{}, fmt.Errorf("failed to decode response: %w", err)
	}

	w := Weather{
		City:        parsed.Name,
		TempCelsius: parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
	}
	if len(parsed.Weather) > 0 {
		w.Description = parsed.Weather[0].Description
	}
	return w, nil
}
