// Package openmeteo provides a client for the Open-Meteo air quality API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/airquality"
)

const (
	// ProviderName identifies this air-quality provider.
	ProviderName = "open-meteo-air-quality"

	// DefaultBaseURL is the Open-Meteo air quality API base URL.
	DefaultBaseURL = "https://air-quality-api.open-meteo.com/v1/air-quality"

	// DefaultTimeout is the fixed per-call timeout.
	DefaultTimeout = 20 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo air quality client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 20s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo air quality API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo air quality client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// hourlySeries holds the hourly pollutant time series. Individual entries
// may be null when a station reports no value for an hour.
type hourlySeries struct {
	PM25 []*float64 `json:"pm2_5"`
	PM10 []*float64 `json:"pm10"`
}

type airQualityResponse struct {
	Hourly *hourlySeries `json:"hourly"`
}

// LatestReadings fetches the most recent pm2.5/pm10 values for a location.
// The last entry of each hourly series is used.
func (c *Client) LatestReadings(ctx context.Context, lat, lon float64) (*airquality.Reading, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", lat))
	query.Set("longitude", fmt.Sprintf("%f", lon))
	query.Set("hourly", "pm10,pm2_5")
	query.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body airQualityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if body.Hourly == nil {
		return nil, fmt.Errorf("response missing hourly series")
	}

	reading := &airquality.Reading{}
	if n := len(body.Hourly.PM25); n > 0 {
		reading.PM25 = body.Hourly.PM25[n-1]
	}
	if n := len(body.Hourly.PM10); n > 0 {
		reading.PM10 = body.Hourly.PM10[n-1]
	}
	return reading, nil
}
