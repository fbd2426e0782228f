package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"laundrify/config"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) repository.AddressAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL}}
	client, err := NewAddressClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func TestAddressClient_CreateAddress(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/addresses", r.URL.Path)
		assert.Equal(t, "guest_123", r.Header.Get("user-id"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "12 Park Street, Kolkata, 700016", payload["full_address"])

		payload["_id"] = "backend-1"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))

	record := &entity.AddressRecord{
		ID:          "local-1",
		Area:        "Kolkata",
		PostalCode:  "700016",
		FullAddress: "12 Park Street, Kolkata, 700016",
		Type:        entity.AddressTypeHome,
		Status:      entity.StatusActive,
	}

	created, err := client.CreateAddress(context.Background(), "guest_123", record)
	require.NoError(t, err)
	assert.Equal(t, "backend-1", created.BackendID)
	assert.Equal(t, "local-1", created.ID)
	assert.True(t, created.Synced)
}

func TestAddressClient_ListAddresses_FiltersDeleted(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "+919999999999", r.Header.Get("user-id"))
		json.NewEncoder(w).Encode([]backendRecord{
			{ID: "b1", FullAddress: "12 Park Street, Kolkata, 700016", Area: "Kolkata", Pincode: "700016", Title: "Home", AddressType: "home", CreatedAt: created, Status: "active"},
			{ID: "b2", FullAddress: "Old Flat", Status: "deleted"},
		})
	}))

	records, err := client.ListAddresses(context.Background(), "+919999999999")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0].BackendID)
	assert.Equal(t, "Kolkata", records[0].EffectiveArea())
	assert.Equal(t, entity.AddressTypeHome, records[0].Type)
	assert.Equal(t, created, records[0].UpdatedAt)
	assert.True(t, records[0].Synced)
}

func TestAddressClient_RateLimited(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.ListAddresses(context.Background(), "guest_123")
	assert.ErrorIs(t, err, repository.ErrRemoteRateLimited)
}

func TestAddressClient_DeleteMissing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := client.DeleteAddress(context.Background(), "guest_123", "nope")
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
}

func TestAddressClient_UpdateWithoutBackendID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.UpdateAddress(context.Background(), "guest_123", &entity.AddressRecord{ID: "local-only"})
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
}

func TestAddressClient_CollapsesConcurrentIdenticalRequests(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		json.NewEncoder(w).Encode([]backendRecord{})
	}))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ListAddresses(context.Background(), "guest_123")
			assert.NoError(t, err)
		}()
	}

	// Let the goroutines pile onto the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
