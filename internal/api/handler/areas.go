package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/airquality"
	"github.com/ecoroute/ecoroute/internal/api/response"
)

// AreaStreamInterval is the tick interval for the live area metrics stream.
const AreaStreamInterval = 15 * time.Second

// AreasHandler handles live per-zone metrics endpoints.
type AreasHandler struct {
	service  *airquality.Service
	interval time.Duration
	logger   zerolog.Logger
}

// NewAreasHandler creates a new AreasHandler. A zero interval uses the
// default stream interval.
func NewAreasHandler(service *airquality.Service, interval time.Duration, logger zerolog.Logger) *AreasHandler {
	if interval == 0 {
		interval = AreaStreamInterval
	}
	return &AreasHandler{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// AreaMetrics handles GET /api/areas-metrics?speed_kmh=<n>.
func (h *AreasHandler) AreaMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := h.service.ComputeAreaMetrics(r.Context(), parseSpeed(r))
	response.JSON(w, r, http.StatusOK, map[string]interface{}{"areas": metrics})
}

// AQIStream handles GET /api/aqi-stream?speed_kmh=<n>. It pushes the full
// area metric set immediately and then on every tick until the client
// disconnects.
func (h *AreasHandler) AQIStream(w http.ResponseWriter, r *http.Request) {
	stream, ok := newSSEWriter(w)
	if !ok {
		return
	}

	speed := parseSpeed(r)
	ctx := r.Context()

	send := func() error {
		return stream.Send(h.service.ComputeAreaMetrics(ctx, speed))
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
				h.logger.Debug().Err(err).Msg("area stream client gone")
				return
			}
		}
	}
}

// parseSpeed reads speed_kmh, falling back to zero on absence or parse
// failure so the service applies its default.
func parseSpeed(r *http.Request) float64 {
	raw := r.URL.Query().Get("speed_kmh")
	if raw == "" {
		return 0
	}
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return speed
}
