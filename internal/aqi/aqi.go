// Package aqi converts pollutant concentrations to the Indian national Air
// Quality Index via table-driven piecewise-linear breakpoint interpolation.
package aqi

// MaxIndex is returned for concentrations above the top breakpoint band.
// Upstream readings are noisy and unbounded, so the scale is capped instead
// of extrapolated.
const MaxIndex = 500.0

// band maps a concentration range [Lo, Hi] to an index range [ILo, IHi].
type band struct {
	Lo, Hi   float64
	ILo, IHi float64
}

// CPCB breakpoint tables for 24-hour PM2.5 and PM10 concentrations (µg/m³).
var (
	pm25Bands = []band{
		{0, 30, 0, 50},
		{31, 60, 51, 100},
		{61, 90, 101, 200},
		{91, 120, 201, 300},
		{121, 250, 301, 400},
		{251, 300, 401, 500},
	}

	pm10Bands = []band{
		{0, 50, 0, 50},
		{51, 100, 51, 100},
		{101, 250, 101, 200},
		{251, 350, 201, 300},
		{351, 430, 301, 400},
		{431, 500, 401, 500},
	}
)

func subindex(c float64, bands []band) float64 {
	for _, b := range bands {
		if c <= b.Hi {
			return (b.IHi-b.ILo)/(b.Hi-b.Lo)*(c-b.Lo) + b.ILo
		}
	}
	return MaxIndex
}

// SubindexPM25 returns the AQI sub-index for a PM2.5 concentration in µg/m³.
func SubindexPM25(c float64) float64 {
	return subindex(c, pm25Bands)
}

// SubindexPM10 returns the AQI sub-index for a PM10 concentration in µg/m³.
func SubindexPM10(c float64) float64 {
	return subindex(c, pm10Bands)
}

// IndianAQI returns the combined AQI for a location as the maximum of the
// PM2.5 and PM10 sub-indices. A missing pollutant contributes 0 rather than
// being excluded; this is a deliberate policy choice that can under-weight
// locations with partial data.
func IndianAQI(pm25, pm10 *float64) float64 {
	var s25, s10 float64
	if pm25 != nil {
		s25 = SubindexPM25(*pm25)
	}
	if pm10 != nil {
		s10 = SubindexPM10(*pm10)
	}
	if s25 > s10 {
		return s25
	}
	return s10
}
