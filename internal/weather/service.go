package weather

import (
	"context"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service serves current conditions for arbitrary points.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Current fetches the latest conditions for a location.
func (s *Service) Current(ctx context.Context, lat, lon float64) (*Snapshot, error) {
	snap, err := s.provider.CurrentConditions(ctx, lat, lon)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("provider", s.provider.Name()).
			Msg("weather fetch failed")
		return nil, err
	}
	return snap, nil
}
