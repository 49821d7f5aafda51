// Package airquality aggregates live pollutant readings into per-zone area
// metrics.
package airquality

import "context"

// Reading holds the latest pollutant concentrations at a location, in µg/m³.
// A nil field means the provider had no value for that pollutant; partial
// data is expected and not an error.
type Reading struct {
	PM25 *float64
	PM10 *float64
}

// Provider defines the interface for air-quality data providers.
type Provider interface {
	// LatestReadings fetches the most recent pm2.5/pm10 readings for a
	// location.
	LatestReadings(ctx context.Context, lat, lon float64) (*Reading, error)
	// Name returns the provider name for logging.
	Name() string
}

// AreaMetric is the live snapshot for one zone. Recomputed every aggregation
// cycle; transient.
type AreaMetric struct {
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	PM25       *float64 `json:"pm25"`
	PM10       *float64 `json:"pm10"`
	AQI        float64  `json:"aqi"`
	EcoScore   float64  `json:"eco_score"`
	CO2PerKm   float64  `json:"co2_per_km"`
	CO2RateKgh float64  `json:"co2_rate_kgh"`
}
