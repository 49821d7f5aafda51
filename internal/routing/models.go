// Package routing provides access to external driving-route providers.
// Route computation itself is fully delegated; this package only models the
// provider's responses.
package routing

import (
	"context"
	"errors"
)

// Sentinel errors for routing operations.
var (
	// ErrProviderUnavailable indicates the routing provider is unreachable
	// or returned an error response.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrNoRouteFound indicates the provider was reachable but returned no
	// route between the given points.
	ErrNoRouteFound = errors.New("no route found between the given points")
	// ErrInvalidCoordinates indicates the provided coordinates are out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Provider defines the interface for routing providers.
type Provider interface {
	// GetRoutes retrieves candidate driving routes between two points,
	// including alternatives and turn-by-turn maneuvers when available.
	GetRoutes(ctx context.Context, from, to Coordinate) ([]Route, error)
	// Name returns the provider identifier for logging.
	Name() string
}

// Coordinate is a (lon, lat) pair in degrees. The longitude-first ordering
// matches the provider's GeoJSON convention and is preserved end-to-end,
// including in API responses.
type Coordinate [2]float64

// Lon returns the longitude component.
func (c Coordinate) Lon() float64 { return c[0] }

// Lat returns the latitude component.
func (c Coordinate) Lat() float64 { return c[1] }

// Valid reports whether the coordinate is within geographic range.
func (c Coordinate) Valid() bool {
	return c.Lat() >= -90 && c.Lat() <= 90 && c.Lon() >= -180 && c.Lon() <= 180
}

// Route is a single candidate route as returned by the provider.
type Route struct {
	// Geometry is the full route polyline, tens to thousands of points.
	Geometry []Coordinate
	// DistanceM is the total route distance in meters.
	DistanceM float64
	// DurationS is the estimated travel time in seconds.
	DurationS float64
	// Legs holds the per-leg maneuver steps.
	Legs []Leg
}

// Leg is one segment of a route between two waypoints.
type Leg struct {
	Steps []Step
}

// Step is a single maneuver within a leg.
type Step struct {
	DistanceM float64
	DurationS float64
	// Name is the road name, possibly empty.
	Name     string
	Maneuver Maneuver
}

// Maneuver describes the action at the start of a step.
type Maneuver struct {
	// Type is the provider's maneuver type (turn, depart, arrive, ...).
	// Unrecognized types must be tolerated.
	Type string
	// Modifier is an optional direction qualifier (left, right, ...).
	Modifier string
	// Exit is the roundabout exit number when applicable.
	Exit *int
	// Location is the maneuver position.
	Location Coordinate
}

// Error provides detailed error information from the routing provider.
type Error struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
