// Package weather provides current conditions for the monitored city.
package weather

import (
	"context"
	"errors"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
)

// Snapshot represents current weather conditions at a location. Fields are
// nil when the upstream provider does not report them.
type Snapshot struct {
	TemperatureC    *float64 `json:"temperature_c"`
	Humidity        *float64 `json:"humidity"`
	WindKmh         *float64 `json:"wind_kmh"`
	Code            *int     `json:"code"`
	RainProbability *float64 `json:"rain_probability"`
}

// Provider defines the interface for weather data providers.
type Provider interface {
	// CurrentConditions fetches the latest conditions for a location.
	CurrentConditions(ctx context.Context, lat, lon float64) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}
