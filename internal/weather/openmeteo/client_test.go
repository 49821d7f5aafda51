package openmeteo_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoroute/ecoroute/internal/weather"
	"github.com/ecoroute/ecoroute/internal/weather/openmeteo"
)

func TestClient_CurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code", q.Get("current"))
		assert.Equal(t, "precipitation_probability", q.Get("hourly"))
		assert.Equal(t, "auto", q.Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"temperature_2m": 27.4,
				"relative_humidity_2m": 68,
				"wind_speed_10m": 11.2,
				"weather_code": 3
			},
			"hourly": {
				"precipitation_probability": [10, 25, 40]
			}
		}`))
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	snap, err := client.CurrentConditions(context.Background(), 12.2958, 76.6394)
	require.NoError(t, err)

	require.NotNil(t, snap.TemperatureC)
	assert.InDelta(t, 27.4, *snap.TemperatureC, 1e-9)
	require.NotNil(t, snap.Humidity)
	assert.InDelta(t, 68, *snap.Humidity, 1e-9)
	require.NotNil(t, snap.WindKmh)
	assert.InDelta(t, 11.2, *snap.WindKmh, 1e-9)
	require.NotNil(t, snap.Code)
	assert.Equal(t, 3, *snap.Code)
	require.NotNil(t, snap.RainProbability)
	assert.InDelta(t, 40, *snap.RainProbability, 1e-9)
}

func TestClient_CurrentConditions_MissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current": {"temperature_2m": 30.1}}`))
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	snap, err := client.CurrentConditions(context.Background(), 12.3, 76.6)
	require.NoError(t, err)
	require.NotNil(t, snap.TemperatureC)
	assert.Nil(t, snap.Humidity)
	assert.Nil(t, snap.WindKmh)
	assert.Nil(t, snap.Code)
	assert.Nil(t, snap.RainProbability)
}

func TestClient_CurrentConditions_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.CurrentConditions(context.Background(), 12.3, 76.6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrProviderUnavailable))
}

func TestClient_CurrentConditions_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.CurrentConditions(context.Background(), 12.3, 76.6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrProviderUnavailable))
}
