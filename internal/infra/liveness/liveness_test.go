package liveness

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundrify/config"
	"laundrify/internal/domain/service"
	"laundrify/internal/infra/kvstore"
	"laundrify/internal/watchdog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreProbe_Roundtrip(t *testing.T) {
	probe := NewStoreProbe(kvstore.NewMemoryStore())

	assert.Equal(t, "store_roundtrip", probe.Name())
	assert.NoError(t, probe.Check(context.Background()))
}

func TestStoreRecoverer_CachePurgeKeepsAddresses(t *testing.T) {
	store := kvstore.NewMemoryStore()
	recoverer := NewStoreRecoverer(store, newTestLogger())

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "cache_suggestions", []byte("derived")))
	require.NoError(t, store.Set(ctx, service.AddressKey("user_1"), []byte("[]")))

	require.NoError(t, recoverer.Recover(ctx, watchdog.ActionCachePurge))

	purged, err := store.Get(ctx, "cache_suggestions")
	require.NoError(t, err)
	assert.Nil(t, purged)

	kept, err := store.Get(ctx, service.AddressKey("user_1"))
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestStoreRecoverer_ReloadDropsHeartbeat(t *testing.T) {
	store := kvstore.NewMemoryStore()
	recoverer := NewStoreRecoverer(store, newTestLogger())

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, heartbeatKey, []byte("stamp")))

	require.NoError(t, recoverer.Recover(ctx, watchdog.ActionReload))

	got, err := store.Get(ctx, heartbeatKey)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewSnapshotFunc_PersistsSnapshot(t *testing.T) {
	store := kvstore.NewMemoryStore()
	snapshot := NewSnapshotFunc(store)

	ctx := context.Background()
	require.NoError(t, snapshot(ctx))

	data, err := store.Get(ctx, snapshotKey)
	require.NoError(t, err)
	require.NotNil(t, data)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "forced_reload", decoded["reason"])
}

func TestSessionGuard_RestoresFromShadowBackup(t *testing.T) {
	store := kvstore.NewMemoryStore()
	cfg := &config.Config{Watchdog: &config.WatchdogConfig{LogoutSuppression: 30 * time.Second}}
	guard := NewSessionGuard(GuardParams{Config: cfg, Logger: newTestLogger(), Store: store})

	ctx := context.Background()
	session := watchdog.Session{Token: "tok_1", UserID: "+919999999999", SavedAt: time.Now()}
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, secondaryBackupKey, data))

	restored, err := guard.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok_1", restored.Token)
}
