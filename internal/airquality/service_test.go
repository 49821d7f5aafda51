package airquality_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoroute/ecoroute/internal/airquality"
	"github.com/ecoroute/ecoroute/internal/zones"
)

type fakeProvider struct {
	readings map[string]*airquality.Reading
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) LatestReadings(_ context.Context, lat, _ float64) (*airquality.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := keyFor(lat)
	return f.readings[key], nil
}

func keyFor(lat float64) string {
	if lat < 12.5 {
		return "south"
	}
	return "north"
}

func ptr(v float64) *float64 { return &v }

func newTable(t *testing.T, zs []zones.Zone) *zones.Table {
	t.Helper()
	table, err := zones.NewTable(zs)
	require.NoError(t, err)
	return table
}

func TestService_ComputeAreaMetrics(t *testing.T) {
	table := newTable(t, []zones.Zone{
		{Name: "South", Lat: 12.3, Lon: 76.6, RadiusM: 1000, AQI: 100, CO2Factor: 0.12},
		{Name: "North", Lat: 12.6, Lon: 76.6, RadiusM: 1000, AQI: 100, CO2Factor: 0.12},
	})

	provider := &fakeProvider{readings: map[string]*airquality.Reading{
		// pm2.5 of 30 maps to a subindex of exactly 50.
		"south": {PM25: ptr(30.0), PM10: ptr(25.0)},
		"north": {PM25: ptr(60.0), PM10: ptr(100.0)},
	}}

	svc := airquality.NewService(airquality.ServiceConfig{
		Zones:    table,
		Provider: provider,
		Logger:   zerolog.Nop(),
	})

	metrics := svc.ComputeAreaMetrics(context.Background(), 30)
	require.Len(t, metrics, 2)

	south := metrics[0]
	assert.Equal(t, "South", south.Name)
	require.NotNil(t, south.PM25)
	assert.InDelta(t, 30.0, *south.PM25, 1e-9)
	assert.InDelta(t, 50.0, south.AQI, 1e-9)
	// aqiNorm = 10, co2Norm = 76.8, eco = 100 - (6 + 30.72) = 63.28 -> 63.3
	assert.InDelta(t, 63.3, south.EcoScore, 1e-9)
	assert.InDelta(t, 0.192, south.CO2PerKm, 1e-9)
	assert.InDelta(t, 5.76, south.CO2RateKgh, 1e-9)

	north := metrics[1]
	// pm2.5 60 -> 100, pm10 100 -> 100; combined AQI 100.
	assert.InDelta(t, 100.0, north.AQI, 1e-9)
	// aqiNorm = 20, eco = 100 - (12 + 30.72) = 57.28 -> 57.3
	assert.InDelta(t, 57.3, north.EcoScore, 1e-9)
}

func TestService_ComputeAreaMetrics_ProviderFailure(t *testing.T) {
	table := newTable(t, []zones.Zone{
		{Name: "South", Lat: 12.3, Lon: 76.6, RadiusM: 1000, AQI: 100, CO2Factor: 0.12},
	})

	svc := airquality.NewService(airquality.ServiceConfig{
		Zones:    table,
		Provider: &fakeProvider{err: errors.New("upstream down")},
		Logger:   zerolog.Nop(),
	})

	metrics := svc.ComputeAreaMetrics(context.Background(), 30)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Nil(t, m.PM25)
	assert.Nil(t, m.PM10)
	assert.InDelta(t, 0.0, m.AQI, 1e-9)
	// aqiNorm = 0, eco = 100 - 30.72 = 69.28 -> 69.3
	assert.InDelta(t, 69.3, m.EcoScore, 1e-9)
}

func TestService_ComputeAreaMetrics_DefaultSpeed(t *testing.T) {
	table := newTable(t, []zones.Zone{
		{Name: "South", Lat: 12.3, Lon: 76.6, RadiusM: 1000, AQI: 100, CO2Factor: 0.12},
	})

	svc := airquality.NewService(airquality.ServiceConfig{
		Zones:    table,
		Provider: &fakeProvider{readings: map[string]*airquality.Reading{}},
		Logger:   zerolog.Nop(),
	})

	metrics := svc.ComputeAreaMetrics(context.Background(), 0)
	require.Len(t, metrics, 1)
	assert.InDelta(t, 0.192*airquality.DefaultSpeedKmh, metrics[0].CO2RateKgh, 1e-9)
}
