package airquality

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/aqi"
	"github.com/ecoroute/ecoroute/internal/zones"
)

const (
	// DefaultSpeedKmh is assumed when the caller supplies no speed.
	DefaultSpeedKmh = 30.0

	// co2PerKm is a fixed fleet-average emission rate applied to every
	// zone. Known limitation: route scoring uses per-zone factors for the
	// same concept, while the live snapshot does not.
	co2PerKm = 0.192

	// co2NormCeiling is the emission rate that maps to 100 on the
	// normalized scale.
	co2NormCeiling = 0.25
)

// ServiceConfig holds configuration for the area metrics service.
type ServiceConfig struct {
	// Zones is the static zone table.
	Zones *zones.Table

	// Provider supplies live pollutant readings.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service computes live per-zone area metrics.
type Service struct {
	zones    *zones.Table
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new area metrics service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		zones:    cfg.Zones,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// ComputeAreaMetrics returns one metric per zone, in table order. Provider
// failures or missing pollutant fields degrade to nil readings for that
// zone; they never fail the whole cycle.
func (s *Service) ComputeAreaMetrics(ctx context.Context, speedKmh float64) []AreaMetric {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}

	out := make([]AreaMetric, 0, s.zones.Len())
	for _, z := range s.zones.Zones() {
		var pm25, pm10 *float64
		reading, err := s.provider.LatestReadings(ctx, z.Lat, z.Lon)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("zone", z.Name).
				Str("provider", s.provider.Name()).
				Msg("air quality fetch failed, reporting null readings")
		} else if reading != nil {
			pm25 = reading.PM25
			pm10 = reading.PM10
		}

		index := aqi.IndianAQI(pm25, pm10)
		aqiNorm := math.Min(100, index/5)
		co2Norm := math.Min(100, co2PerKm/co2NormCeiling*100)
		ecoScore := clamp(0, 100, 100-(0.6*aqiNorm+0.4*co2Norm))

		out = append(out, AreaMetric{
			Name:       z.Name,
			Lat:        z.Lat,
			Lon:        z.Lon,
			PM25:       pm25,
			PM10:       pm10,
			AQI:        round(index, 1),
			EcoScore:   round(ecoScore, 1),
			CO2PerKm:   round(co2PerKm, 3),
			CO2RateKgh: round(co2PerKm*speedKmh, 3),
		})
	}
	return out
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
