// Package scoring computes eco-friendliness metrics for candidate routes and
// selects the cleanest and dirtiest alternatives.
package scoring

import (
	"math"

	"github.com/ecoroute/ecoroute/internal/routing"
	"github.com/ecoroute/ecoroute/internal/zones"
)

const (
	// maxSamples bounds the number of polyline points scored per route, so
	// scoring cost stays flat regardless of route length.
	maxSamples = 15

	// defaultCO2Factor is used when a polyline yields no samples.
	defaultCO2Factor = 0.12

	// co2Scale converts distance times emission factor into the absolute
	// emission estimate shown to the user.
	co2Scale = 0.2
)

// RouteMetrics holds the derived eco metrics for one candidate route.
// Recomputed on every request, never persisted.
type RouteMetrics struct {
	DistanceKm     float64              `json:"distance_km"`
	DurationMin    float64              `json:"duration_min"`
	AvgAQI         float64              `json:"avg_aqi"`
	CO2Kg          float64              `json:"co2_kg"`
	EcoScore       float64              `json:"eco_score"`
	PollutionIndex float64              `json:"pollution_index"`
	Geometry       []routing.Coordinate `json:"geometry"`
	Steps          []Step               `json:"steps"`

	// AvgCO2Factor is an intermediate used by the pollution index; it is
	// not part of the response payload.
	AvgCO2Factor float64 `json:"-"`
}

// Step is a single turn-by-turn instruction derived from provider maneuver
// data.
type Step struct {
	DistanceM float64            `json:"distance_m"`
	DurationS float64            `json:"duration_s"`
	Location  routing.Coordinate `json:"location"`
	Text      string             `json:"text"`
}

// Scorer samples route polylines against the zone table and derives
// comparable eco metrics.
type Scorer struct {
	zones *zones.Table
}

// NewScorer creates a Scorer backed by the given zone table.
func NewScorer(table *zones.Table) *Scorer {
	return &Scorer{zones: table}
}

// Score computes the metrics for one candidate route.
func (s *Scorer) Score(route routing.Route) RouteMetrics {
	distKm := route.DistanceM / 1000
	durMin := route.DurationS / 60

	avgAQI, avgCO2 := s.sampleZones(route.Geometry)

	ecoScore := clamp(0, 100, 100-(avgAQI*0.6+avgCO2*100*0.4))
	co2Kg := distKm * avgCO2 * co2Scale

	m := RouteMetrics{
		DistanceKm:   round(distKm, 2),
		DurationMin:  round(durMin, 1),
		AvgAQI:       round(avgAQI, 1),
		CO2Kg:        round(co2Kg, 3),
		EcoScore:     round(ecoScore, 1),
		AvgCO2Factor: avgCO2,
		// The index mixes an intensity measure with an absolute-emission
		// measure; it is only meaningful for ordering routes of a single
		// request, never as an absolute unit.
		PollutionIndex: avgAQI*0.7 + co2Kg*0.3,
		Geometry:       route.Geometry,
	}

	for _, leg := range route.Legs {
		for _, st := range leg.Steps {
			m.Steps = append(m.Steps, Step{
				DistanceM: st.DistanceM,
				DurationS: st.DurationS,
				Location:  st.Maneuver.Location,
				Text:      Instruction(st),
			})
		}
	}

	return m
}

// sampleZones walks the polyline at a fixed stride, resolving each sampled
// point to its nearest zone, and returns the mean baseline AQI and CO2
// factor over the samples.
func (s *Scorer) sampleZones(geometry []routing.Coordinate) (avgAQI, avgCO2 float64) {
	stride := len(geometry) / maxSamples
	if stride < 1 {
		stride = 1
	}

	var aqiSum, co2Sum float64
	var n int
	for i := 0; i < len(geometry); i += stride {
		z := s.zones.Nearest(geometry[i].Lat(), geometry[i].Lon())
		aqiSum += z.AQI
		co2Sum += z.CO2Factor
		n++
	}

	if n == 0 {
		return 0, defaultCO2Factor
	}
	return aqiSum / float64(n), co2Sum / float64(n)
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
