package scoring

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/routing"
	"github.com/ecoroute/ecoroute/internal/zones"
)

// Comparison is the result of scoring all candidate routes for one request.
type Comparison struct {
	Polluted *RouteMetrics `json:"polluted"`
	Eco      *RouteMetrics `json:"eco"`
	Zones    []zones.Zone  `json:"zones"`
}

// ServiceConfig holds configuration for the scoring service.
type ServiceConfig struct {
	// Provider supplies candidate routes.
	Provider routing.Provider

	// Zones is the static zone table.
	Zones *zones.Table

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service fetches candidate routes, scores them against the zone table and
// selects the extremal alternatives.
type Service struct {
	provider routing.Provider
	zones    *zones.Table
	scorer   *Scorer
	logger   zerolog.Logger
}

// NewService creates a new scoring service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		zones:    cfg.Zones,
		scorer:   NewScorer(cfg.Zones),
		logger:   cfg.Logger,
	}
}

// CompareRoutes fetches route alternatives between two points and returns
// the greenest and most polluted candidates together with the zone table.
// Provider failures propagate; they fail this request only.
func (s *Service) CompareRoutes(ctx context.Context, from, to routing.Coordinate) (*Comparison, error) {
	routes, err := s.provider.GetRoutes(ctx, from, to)
	if err != nil {
		return nil, err
	}

	metrics := make([]RouteMetrics, 0, len(routes))
	for _, r := range routes {
		metrics = append(metrics, s.scorer.Score(r))
	}

	eco, polluted := SelectExtremes(metrics)

	s.logger.Debug().
		Int("candidates", len(metrics)).
		Float64("eco_index", eco.PollutionIndex).
		Float64("polluted_index", polluted.PollutionIndex).
		Msg("scored route alternatives")

	return &Comparison{
		Eco:      eco,
		Polluted: polluted,
		Zones:    s.zones.Zones(),
	}, nil
}
