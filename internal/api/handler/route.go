package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ecoroute/ecoroute/internal/api/models"
	"github.com/ecoroute/ecoroute/internal/api/response"
	"github.com/ecoroute/ecoroute/internal/routing"
	"github.com/ecoroute/ecoroute/internal/scoring"
)

// RouteHandler handles the route comparison endpoint.
type RouteHandler struct {
	scoring  *scoring.Service
	validate *validator.Validate
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(scoringService *scoring.Service) *RouteHandler {
	return &RouteHandler{
		scoring:  scoringService,
		validate: validator.New(),
	}
}

// CompareRoutes handles GET /api/route?from_lat&from_lon&to_lat&to_lon.
// It returns the greenest and most polluted alternatives between the two
// points, each with full per-route metrics.
func (h *RouteHandler) CompareRoutes(w http.ResponseWriter, r *http.Request) {
	query, err := parseRouteQuery(r)
	if err != nil {
		response.BadRequest(w, r, models.CodeBadCoords, "from_lat, from_lon, to_lat and to_lon must be valid coordinates", nil)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		response.BadRequest(w, r, models.CodeBadCoords, "coordinates out of range", fieldErrors(err))
		return
	}

	from := routing.Coordinate{query.FromLon, query.FromLat}
	to := routing.Coordinate{query.ToLon, query.ToLat}

	comparison, err := h.scoring.CompareRoutes(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrNoRouteFound):
			response.NotFound(w, r, models.CodeNoRoutes, "no routes found between the given points")
		case errors.Is(err, routing.ErrInvalidCoordinates):
			response.BadRequest(w, r, models.CodeBadCoords, "coordinates out of range", nil)
		default:
			response.BadGateway(w, r, models.CodeRoutingFailed, "routing provider unavailable")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, comparison)
}

func parseRouteQuery(r *http.Request) (*models.RouteQuery, error) {
	q := r.URL.Query()

	fromLat, err := strconv.ParseFloat(q.Get("from_lat"), 64)
	if err != nil {
		return nil, err
	}
	fromLon, err := strconv.ParseFloat(q.Get("from_lon"), 64)
	if err != nil {
		return nil, err
	}
	toLat, err := strconv.ParseFloat(q.Get("to_lat"), 64)
	if err != nil {
		return nil, err
	}
	toLon, err := strconv.ParseFloat(q.Get("to_lon"), 64)
	if err != nil {
		return nil, err
	}

	return &models.RouteQuery{
		FromLat: fromLat,
		FromLon: fromLon,
		ToLat:   toLat,
		ToLon:   toLon,
	}, nil
}
