package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/airquality"
)

// Snapshot is the payload published for each cycle.
type Snapshot struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Areas       []airquality.AreaMetric `json:"areas"`
}

// SnapshotJob periodically computes area metrics and publishes them.
type SnapshotJob struct {
	service   *airquality.Service
	publisher Publisher
	interval  time.Duration
	speedKmh  float64
	logger    zerolog.Logger

	now func() time.Time
}

// SnapshotJobConfig holds configuration for the snapshot job.
type SnapshotJobConfig struct {
	Service   *airquality.Service
	Publisher Publisher
	Interval  time.Duration
	SpeedKmh  float64
	Logger    zerolog.Logger
}

// NewSnapshotJob creates a new snapshot job.
func NewSnapshotJob(cfg SnapshotJobConfig) *SnapshotJob {
	interval := cfg.Interval
	if interval == 0 {
		interval = 5 * time.Minute
	}

	return &SnapshotJob{
		service:   cfg.Service,
		publisher: cfg.Publisher,
		interval:  interval,
		speedKmh:  cfg.SpeedKmh,
		logger:    cfg.Logger,
		now:       time.Now,
	}
}

// Run publishes one snapshot immediately and then on every interval
// until the context is cancelled. A failing cycle is logged and the loop
// continues.
func (j *SnapshotJob) Run(ctx context.Context) {
	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error().Err(err).Msg("snapshot cycle failed")
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("snapshot job stopped")
			return
		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error().Err(err).Msg("snapshot cycle failed")
			}
		}
	}
}

// RunOnce computes and publishes a single snapshot.
func (j *SnapshotJob) RunOnce(ctx context.Context) error {
	start := j.now()

	snapshot := Snapshot{
		GeneratedAt: start.UTC(),
		Areas:       j.service.ComputeAreaMetrics(ctx, j.speedKmh),
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	if err := j.publisher.Publish(ctx, payload); err != nil {
		return err
	}

	j.logger.Info().
		Int("areas", len(snapshot.Areas)).
		Dur("duration", time.Since(start)).
		Msg("snapshot cycle completed")

	return nil
}
