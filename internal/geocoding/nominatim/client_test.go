package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoroute/ecoroute/internal/geocoding"
	"github.com/ecoroute/ecoroute/internal/geocoding/nominatim"
)

func TestClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Mysore Palace, Mysuru, Karnataka, India", q.Get("q"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "EcoRoute/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"lat": "12.3051",
			"lon": "76.6551",
			"display_name": "Mysore Palace, Mysuru, Karnataka, India"
		}]`))
	}))
	defer server.Close()

	client := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	result, err := client.Geocode(context.Background(), "Mysore Palace")
	require.NoError(t, err)
	assert.InDelta(t, 12.3051, result.Lat, 1e-9)
	assert.InDelta(t, 76.6551, result.Lon, 1e-9)
	assert.Equal(t, "Mysore Palace, Mysuru, Karnataka, India", result.DisplayName)
}

func TestClient_Geocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.Geocode(context.Background(), "nowhere at all")
	require.ErrorIs(t, err, geocoding.ErrNoResults)
}

func TestClient_Geocode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.Geocode(context.Background(), "palace")
	require.ErrorIs(t, err, geocoding.ErrProviderUnavailable)
}

func TestClient_Geocode_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.Geocode(context.Background(), "palace")
	require.ErrorIs(t, err, geocoding.ErrProviderUnavailable)
}

func TestClient_Geocode_BadCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "not-a-number", "lon": "76.6", "display_name": "x"}]`))
	}))
	defer server.Close()

	client := nominatim.NewClient(nominatim.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	_, err := client.Geocode(context.Background(), "palace")
	require.ErrorIs(t, err, geocoding.ErrProviderUnavailable)
}
