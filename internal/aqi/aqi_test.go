package aqi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecoroute/ecoroute/internal/aqi"
)

func ptr(f float64) *float64 { return &f }

func TestSubindexPM25_BandBoundaries(t *testing.T) {
	tests := []struct {
		name string
		c    float64
		want float64
	}{
		{"zero", 0, 0},
		{"upper edge of first band", 30, 50},
		{"lower edge of second band", 31, 51},
		{"upper edge of second band", 60, 100},
		{"upper edge of top band", 300, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, aqi.SubindexPM25(tt.c), 1e-9)
		})
	}
}

func TestSubindexPM25_AboveTopBand(t *testing.T) {
	assert.Equal(t, 500.0, aqi.SubindexPM25(301))
	assert.Equal(t, 500.0, aqi.SubindexPM25(10000))
}

func TestSubindexPM10_BandBoundaries(t *testing.T) {
	tests := []struct {
		name string
		c    float64
		want float64
	}{
		{"zero", 0, 0},
		{"upper edge of first band", 50, 50},
		{"lower edge of second band", 51, 51},
		{"upper edge of top band", 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, aqi.SubindexPM10(tt.c), 1e-9)
		})
	}
}

func TestSubindexPM10_AboveTopBand(t *testing.T) {
	assert.Equal(t, 500.0, aqi.SubindexPM10(501))
}

func TestSubindex_MidBandInterpolation(t *testing.T) {
	// Halfway through the PM2.5 band [61, 90] -> [101, 200].
	got := aqi.SubindexPM25(75.5)
	assert.InDelta(t, 150.5, got, 1e-9)
}

func TestSubindex_NonNegative(t *testing.T) {
	for c := 0.0; c <= 600; c += 7.3 {
		assert.GreaterOrEqual(t, aqi.SubindexPM25(c), 0.0)
		assert.GreaterOrEqual(t, aqi.SubindexPM10(c), 0.0)
	}
}

func TestIndianAQI_MaxOfSubindices(t *testing.T) {
	got := aqi.IndianAQI(ptr(30), ptr(100))
	assert.InDelta(t, aqi.SubindexPM10(100), got, 1e-9)

	got = aqi.IndianAQI(ptr(120), ptr(20))
	assert.InDelta(t, aqi.SubindexPM25(120), got, 1e-9)
}

func TestIndianAQI_MissingPollutants(t *testing.T) {
	assert.Equal(t, 0.0, aqi.IndianAQI(nil, nil))

	// A missing pollutant contributes 0, it is not excluded.
	got := aqi.IndianAQI(ptr(30), nil)
	assert.InDelta(t, 50.0, got, 1e-9)

	got = aqi.IndianAQI(nil, ptr(50))
	assert.InDelta(t, 50.0, got, 1e-9)
}
