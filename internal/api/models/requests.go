package models

// RouteQuery holds the parsed coordinates for a route comparison.
type RouteQuery struct {
	FromLat float64 `validate:"gte=-90,lte=90"`
	FromLon float64 `validate:"gte=-180,lte=180"`
	ToLat   float64 `validate:"gte=-90,lte=90"`
	ToLon   float64 `validate:"gte=-180,lte=180"`
}

// CoordQuery holds a single parsed lat/lon pair.
type CoordQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// StatusResponse is the minimal success body for auth mutations.
type StatusResponse struct {
	Status string `json:"status"`
	Name   string `json:"name,omitempty"`
}

// ProfileResponse is the body for the authenticated profile endpoint.
type ProfileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Health represents the health status of the service.
type Health struct {
	Status  string                 `json:"status"`
	Time    string                 `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}
