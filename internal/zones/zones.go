// Package zones provides the static zone table used as an air-quality and
// emission baseline when no live per-point data is available.
package zones

import (
	"errors"

	"github.com/ecoroute/ecoroute/internal/geo"
)

// ErrEmptyTable is returned when a table is constructed without any zones.
// An empty table is a configuration error and fatal at startup.
var ErrEmptyTable = errors.New("zone table must contain at least one zone")

// Zone is a fixed geographic area with baseline air-quality and emission
// characteristics. Zones are loaded once at startup and never mutated.
type Zone struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	RadiusM   float64 `json:"radius_m"`
	AQI       float64 `json:"aqi"`
	CO2Factor float64 `json:"co2_factor"` // kg CO2 per km
}

// Table is an immutable ordered list of zones. It is safe for concurrent
// reads without locking.
type Table struct {
	zones []Zone
}

// NewTable creates a zone table from the given zones.
func NewTable(zones []Zone) (*Table, error) {
	if len(zones) == 0 {
		return nil, ErrEmptyTable
	}
	copied := make([]Zone, len(zones))
	copy(copied, zones)
	return &Table{zones: copied}, nil
}

// Zones returns the zones in table order.
func (t *Table) Zones() []Zone {
	return t.zones
}

// Len returns the number of zones in the table.
func (t *Table) Len() int {
	return len(t.zones)
}

// Nearest returns the zone whose center is closest to the given point.
// Ties are broken by table order, so the result is deterministic.
func (t *Table) Nearest(lat, lon float64) *Zone {
	var nearest *Zone
	best := -1.0
	for i := range t.zones {
		d := geo.DistanceKm(lat, lon, t.zones[i].Lat, t.zones[i].Lon)
		if best < 0 || d < best {
			best = d
			nearest = &t.zones[i]
		}
	}
	return nearest
}
