package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/api/models"
	"github.com/ecoroute/ecoroute/internal/api/response"
	"github.com/ecoroute/ecoroute/internal/weather"
)

// WeatherStreamInterval is the tick interval for the weather stream.
const WeatherStreamInterval = 60 * time.Second

// WeatherHandler handles current conditions endpoints.
type WeatherHandler struct {
	service  *weather.Service
	interval time.Duration
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewWeatherHandler creates a new WeatherHandler. A zero interval uses
// the default stream interval.
func NewWeatherHandler(service *weather.Service, interval time.Duration, logger zerolog.Logger) *WeatherHandler {
	if interval == 0 {
		interval = WeatherStreamInterval
	}
	return &WeatherHandler{
		service:  service,
		interval: interval,
		validate: validator.New(),
		logger:   logger,
	}
}

// Weather handles GET /api/weather?lat&lon.
func (h *WeatherHandler) Weather(w http.ResponseWriter, r *http.Request) {
	coords, ok := h.parseCoords(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Current(r.Context(), coords.Lat, coords.Lon)
	if err != nil {
		response.BadGateway(w, r, models.CodeWeatherFailed, "weather provider unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, snap)
}

// WeatherStream handles GET /api/weather-stream?lat&lon. A failing tick
// degrades to an empty frame rather than closing the stream.
func (h *WeatherHandler) WeatherStream(w http.ResponseWriter, r *http.Request) {
	coords, ok := h.parseCoords(w, r)
	if !ok {
		return
	}

	stream, sok := newSSEWriter(w)
	if !sok {
		return
	}

	ctx := r.Context()

	send := func() error {
		snap, err := h.service.Current(ctx, coords.Lat, coords.Lon)
		if err != nil {
			return stream.SendRaw([]byte("{}"))
		}
		return stream.Send(snap)
	}

	if err := send(); err != nil {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := send(); err != nil {
				h.logger.Debug().Err(err).Msg("weather stream client gone")
				return
			}
		}
	}
}

func (h *WeatherHandler) parseCoords(w http.ResponseWriter, r *http.Request) (*models.CoordQuery, bool) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, r, models.CodeBadCoords, "lat and lon must be valid coordinates", nil)
		return nil, false
	}

	coords := &models.CoordQuery{Lat: lat, Lon: lon}
	if err := h.validate.Struct(coords); err != nil {
		response.BadRequest(w, r, models.CodeBadCoords, "coordinates out of range", fieldErrors(err))
		return nil, false
	}
	return coords, true
}
