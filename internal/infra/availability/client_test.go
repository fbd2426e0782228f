package availability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"laundrify/config"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(baseURL string) service.AvailabilityChecker {
	cfg := &config.Config{Availability: &config.AvailabilityConfig{BaseURL: baseURL}}

	return NewChecker(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestChecker_RemoteVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detected-locations/check-availability", r.URL.Path)
		w.Write([]byte(`{"is_available": true, "matched_zone": "Sector 69, Gurugram", "message": "ok"}`))
	}))
	defer server.Close()

	checker := newTestChecker(server.URL)
	verdict, err := checker.CheckAvailability(context.Background(), service.AvailabilityQuery{
		City: "Gurugram", Pincode: "122101",
	})
	require.NoError(t, err)
	assert.True(t, verdict.IsAvailable)
	assert.Equal(t, "Sector 69, Gurugram", verdict.MatchedZone)
	assert.False(t, verdict.Retryable)
}

func TestChecker_RemoteFailureFallsBackToZoneBound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := newTestChecker(server.URL)
	verdict, err := checker.CheckAvailability(context.Background(), service.AvailabilityQuery{
		City:        "Gurugram",
		Coordinates: &entity.Coordinates{Lat: 28.3960, Lng: 77.0370},
	})
	require.NoError(t, err)
	assert.True(t, verdict.IsAvailable)
	assert.Contains(t, verdict.Message, "GPS verified")
}

func TestChecker_RemoteFailureOutsideZonesIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	checker := newTestChecker(server.URL)
	verdict, err := checker.CheckAvailability(context.Background(), service.AvailabilityQuery{
		City:        "Mumbai",
		Coordinates: &entity.Coordinates{Lat: 19.0760, Lng: 72.8777},
	})
	require.NoError(t, err)
	assert.False(t, verdict.IsAvailable)
	assert.True(t, verdict.Retryable)
}

func TestChecker_LocalNameMatch(t *testing.T) {
	checker := newTestChecker("")

	tests := []struct {
		name      string
		query     service.AvailabilityQuery
		available bool
	}{
		{"city and area", service.AvailabilityQuery{City: "Gurugram Sector 69"}, true},
		{"dashed area in full address", service.AvailabilityQuery{City: "Gurgaon", FullAddress: "A-45, Sector-69, Gurgaon"}, true},
		{"pincode match", service.AvailabilityQuery{City: "Gurugram", Pincode: "122101"}, true},
		{"unserved city", service.AvailabilityQuery{City: "Mumbai", Pincode: "400001"}, false},
		{"served city wrong sector", service.AvailabilityQuery{City: "Gurugram", FullAddress: "Sector 14, Gurugram"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := checker.CheckAvailability(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.available, verdict.IsAvailable)
		})
	}
}

func TestChecker_NoEndpointNegativeIsFinal(t *testing.T) {
	checker := newTestChecker("")

	verdict, err := checker.CheckAvailability(context.Background(), service.AvailabilityQuery{City: "Chennai"})
	require.NoError(t, err)
	assert.False(t, verdict.IsAvailable)
	assert.False(t, verdict.Retryable)
}
