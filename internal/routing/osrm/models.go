package osrm

import "github.com/ecoroute/ecoroute/internal/routing"

// Wire types for the OSRM route service response. Only the fields this
// service consumes are modeled; absent optional fields decode to zero values.

type routeResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64      `json:"distance"` // meters
	Duration float64      `json:"duration"` // seconds
	Geometry osrmGeometry `json:"geometry"`
	Legs     []osrmLeg    `json:"legs"`
}

type osrmGeometry struct {
	Coordinates []routing.Coordinate `json:"coordinates"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmStep struct {
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"`
	Name     string       `json:"name"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmManeuver struct {
	Type     string             `json:"type"`
	Modifier string             `json:"modifier"`
	Exit     *int               `json:"exit"`
	Location routing.Coordinate `json:"location"`
}
