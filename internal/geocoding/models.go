// Package geocoding resolves free-text place names to coordinates.
package geocoding

import (
	"context"
	"errors"
)

// Geocoding errors.
var (
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
	ErrNoResults           = errors.New("no geocoding results")
)

// Result is a resolved location.
type Result struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// Provider defines the interface for geocoding providers.
type Provider interface {
	// Geocode resolves a free-text query to a single location.
	// Returns ErrNoResults when the provider finds nothing.
	Geocode(ctx context.Context, query string) (*Result, error)

	// Name returns the provider name for logging.
	Name() string
}
