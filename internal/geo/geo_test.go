package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecoroute/ecoroute/internal/geo"
)

func TestDistanceKm_ZeroDistance(t *testing.T) {
	d := geo.DistanceKm(12.311, 76.652, 12.311, 76.652)
	assert.Equal(t, 0.0, d)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Mysuru Palace to Chamundi Hills is roughly 4.5km as the crow flies.
	d := geo.DistanceKm(12.3052, 76.6552, 12.2724, 76.6736)
	assert.InDelta(t, 4.2, d, 0.5)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	// Half the Earth's circumference, no NaN from rounding at a=1.
	d := geo.DistanceKm(0, 0, 0, 180)
	assert.False(t, d != d, "distance must not be NaN")
	assert.InDelta(t, 20015, d, 5)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := geo.DistanceKm(12.311, 76.652, 12.356, 76.623)
	d2 := geo.DistanceKm(12.356, 76.623, 12.311, 76.652)
	assert.InDelta(t, d1, d2, 1e-12)
}
