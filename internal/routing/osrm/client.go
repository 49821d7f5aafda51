// Package osrm provides a client for the OSRM route service HTTP API.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/routing"
)

const (
	// ProviderName identifies this routing provider.
	ProviderName = "osrm"

	// DefaultBaseURL is the public OSRM demo server.
	DefaultBaseURL = "https://router.project-osrm.org"

	// DefaultTimeout is the fixed per-call timeout. Provider calls are not
	// retried; a failed call fails the current request.
	DefaultTimeout = 20 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OSRM client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the demo server).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 20s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OSRM API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new OSRM client.
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

// GetRoutes retrieves driving-route alternatives between two points.
func (c *Client) GetRoutes(ctx context.Context, from, to routing.Coordinate) ([]routing.Route, error) {
	if !from.Valid() || !to.Valid() {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "INVALID_COORDINATES",
			Message:  "coordinates out of range",
			Err:      routing.ErrInvalidCoordinates,
		}
	}

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("alternatives", "true")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")

	// OSRM expects lon,lat pairs in the path.
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?%s",
		c.baseURL, from.Lon(), from.Lat(), to.Lon(), to.Lat(), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.logger.Debug().
		Float64("from_lat", from.Lat()).
		Float64("from_lon", from.Lon()).
		Float64("to_lat", to.Lat()).
		Float64("to_lon", to.Lon()).
		Msg("requesting routes from OSRM")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach routing provider",
			Err:      routing.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  fmt.Sprintf("routing provider returned status %d", resp.StatusCode),
			Err:      routing.ErrProviderUnavailable,
		}
	}

	var osrmResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&osrmResp); err != nil {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "MALFORMED_RESPONSE",
			Message:  "decoding routing response",
			Err:      routing.ErrProviderUnavailable,
		}
	}

	if len(osrmResp.Routes) == 0 {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "NO_ROUTE",
			Message:  "no route between the given points",
			Err:      routing.ErrNoRouteFound,
		}
	}

	routes := toRoutes(&osrmResp)

	c.logger.Debug().
		Int("route_count", len(routes)).
		Msg("received routes from OSRM")

	return routes, nil
}

// toRoutes converts an OSRM response to domain routes.
func toRoutes(resp *routeResponse) []routing.Route {
	routes := make([]routing.Route, 0, len(resp.Routes))

	for i := range resp.Routes {
		or := &resp.Routes[i]
		route := routing.Route{
			Geometry:  or.Geometry.Coordinates,
			DistanceM: or.Distance,
			DurationS: or.Duration,
		}

		for j := range or.Legs {
			leg := routing.Leg{Steps: make([]routing.Step, 0, len(or.Legs[j].Steps))}
			for k := range or.Legs[j].Steps {
				os := &or.Legs[j].Steps[k]
				leg.Steps = append(leg.Steps, routing.Step{
					DistanceM: os.Distance,
					DurationS: os.Duration,
					Name:      os.Name,
					Maneuver: routing.Maneuver{
						Type:     os.Maneuver.Type,
						Modifier: os.Maneuver.Modifier,
						Exit:     os.Maneuver.Exit,
						Location: os.Maneuver.Location,
					},
				})
			}
			route.Legs = append(route.Legs, leg)
		}

		routes = append(routes, route)
	}

	return routes
}
