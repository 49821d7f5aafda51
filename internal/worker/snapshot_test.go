package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoroute/ecoroute/internal/airquality"
	"github.com/ecoroute/ecoroute/internal/worker"
	"github.com/ecoroute/ecoroute/internal/zones"
)

type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

type fixedProvider struct{}

func (fixedProvider) Name() string { return "fixed" }

func (fixedProvider) LatestReadings(_ context.Context, _, _ float64) (*airquality.Reading, error) {
	pm25, pm10 := 45.0, 90.0
	return &airquality.Reading{PM25: &pm25, PM10: &pm10}, nil
}

func newAreaService(t *testing.T) *airquality.Service {
	t.Helper()
	table, err := zones.NewTable([]zones.Zone{
		{Name: "Center", Lat: 12.30, Lon: 76.65, RadiusM: 1500, AQI: 120, CO2Factor: 0.14},
	})
	require.NoError(t, err)

	return airquality.NewService(airquality.ServiceConfig{
		Zones:    table,
		Provider: fixedProvider{},
		Logger:   zerolog.Nop(),
	})
}

func TestSnapshotJob_RunOnce(t *testing.T) {
	publisher := &capturePublisher{}
	job := worker.NewSnapshotJob(worker.SnapshotJobConfig{
		Service:   newAreaService(t),
		Publisher: publisher,
		Logger:    zerolog.Nop(),
	})

	require.NoError(t, job.RunOnce(context.Background()))
	require.Len(t, publisher.payloads, 1)

	var snapshot worker.Snapshot
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &snapshot))
	assert.False(t, snapshot.GeneratedAt.IsZero())
	require.Len(t, snapshot.Areas, 1)
	assert.Equal(t, "Center", snapshot.Areas[0].Name)
	assert.Greater(t, snapshot.Areas[0].AQI, 0.0)
}

func TestSnapshotJob_RunOnce_PublishError(t *testing.T) {
	job := worker.NewSnapshotJob(worker.SnapshotJobConfig{
		Service:   newAreaService(t),
		Publisher: &capturePublisher{err: errors.New("topic gone")},
		Logger:    zerolog.Nop(),
	})

	err := job.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic gone")
}
