package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecoroute/ecoroute/internal/api/models"
	"github.com/ecoroute/ecoroute/internal/api/response"
	"github.com/ecoroute/ecoroute/internal/geocoding"
)

// GeocodeHandler handles the geocoding passthrough endpoint.
type GeocodeHandler struct {
	provider geocoding.Provider
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(provider geocoding.Provider) *GeocodeHandler {
	return &GeocodeHandler{provider: provider}
}

// Geocode handles GET /api/geocode?q=<place>.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.BadRequest(w, r, models.CodeMissingQuery, "query parameter q is required", nil)
		return
	}

	result, err := h.provider.Geocode(r.Context(), query)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoResults) {
			response.NotFound(w, r, models.CodeNotFound, "no location found for query")
			return
		}
		response.BadGateway(w, r, models.CodeGeocodeFailed, "geocoding provider unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}
