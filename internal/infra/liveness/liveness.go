// Package liveness wires the watchdog heuristics to the local store: the
// probe heartbeats through it, recovery purges derived state from it, and
// session backups are read out of it.
package liveness

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"laundrify/config"
	"laundrify/internal/domain/service"
	"laundrify/internal/errors"
	"laundrify/internal/watchdog"

	"go.uber.org/fx"
)

const (
	heartbeatKey = "heartbeat"

	// cachePrefix namespaces derived state that is safe to drop during
	// recovery. Address lists are never stored under it.
	cachePrefix = "cache_"

	// Session backup locations, checked in order.
	primaryBackupKey   = "session_backup"
	secondaryBackupKey = "session_backup_shadow"

	snapshotKey = "state_snapshot"
)

// StoreProbe checks liveness with a write/read roundtrip through the store.
type StoreProbe struct {
	store service.KeyValueStore
	now   func() time.Time
}

// NewStoreProbe creates a store roundtrip probe.
func NewStoreProbe(store service.KeyValueStore) *StoreProbe {
	return &StoreProbe{store: store, now: time.Now}
}

func (p *StoreProbe) Name() string { return "store_roundtrip" }

func (p *StoreProbe) Check(ctx context.Context) error {
	stamp := []byte(p.now().Format(time.RFC3339Nano))
	if err := p.store.Set(ctx, heartbeatKey, stamp); err != nil {
		return errors.Wrap(err, "heartbeat write")
	}

	got, err := p.store.Get(ctx, heartbeatKey)
	if err != nil {
		return errors.Wrap(err, "heartbeat read")
	}
	if string(got) != string(stamp) {
		return errors.New("heartbeat readback mismatch")
	}

	return nil
}

// StoreRecoverer executes recovery actions against the store. Escalation
// drops progressively more derived state; durable address lists survive
// every rung.
type StoreRecoverer struct {
	store  service.KeyValueStore
	logger *slog.Logger
}

// NewStoreRecoverer creates a store-backed recoverer.
func NewStoreRecoverer(store service.KeyValueStore, logger *slog.Logger) *StoreRecoverer {
	return &StoreRecoverer{store: store, logger: logger}
}

func (r *StoreRecoverer) Recover(ctx context.Context, action watchdog.RecoveryAction) error {
	switch action {
	case watchdog.ActionSoftRefresh:
		// Nothing to drop. A fresh heartbeat attempt follows on the next
		// probe cycle.
		return nil
	case watchdog.ActionCachePurge:
		return r.purgeCache(ctx)
	case watchdog.ActionReload:
		if err := r.purgeCache(ctx); err != nil {
			return err
		}

		return errors.WithStack(r.store.Delete(ctx, heartbeatKey))
	default:
		return errors.Errorf("unknown recovery action %d", action)
	}
}

func (r *StoreRecoverer) purgeCache(ctx context.Context) error {
	keys, err := r.store.Keys(ctx, cachePrefix)
	if err != nil {
		return errors.Wrap(err, "list cache keys")
	}

	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "purge %s", key)
		}
	}

	r.logger.Info("purged derived cache entries", slog.Int("count", len(keys)))

	return nil
}

// NewSnapshotFunc persists a minimal state snapshot before a forced reload.
func NewSnapshotFunc(store service.KeyValueStore) watchdog.SnapshotFunc {
	return func(ctx context.Context) error {
		snapshot := map[string]string{
			"taken_at": time.Now().Format(time.RFC3339),
			"reason":   "forced_reload",
		}
		data, err := json.Marshal(snapshot)
		if err != nil {
			return errors.Wrap(err, "encode snapshot")
		}

		return errors.WithStack(store.Set(ctx, snapshotKey, data))
	}
}

type storeBackupSource struct {
	name  string
	key   string
	store service.KeyValueStore
}

func (s *storeBackupSource) Name() string { return s.name }

func (s *storeBackupSource) Restore(ctx context.Context) (*watchdog.Session, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.key)
	}
	if data == nil {
		return nil, nil
	}

	var session watchdog.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.key)
	}

	return &session, nil
}

// GuardParams holds dependencies for the session guard, injected by Fx
type GuardParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  service.KeyValueStore
}

// NewSessionGuard builds a guard over the store-backed backup cascade.
func NewSessionGuard(params GuardParams) *watchdog.SessionGuard {
	sources := []watchdog.BackupSource{
		&storeBackupSource{name: "primary", key: primaryBackupKey, store: params.Store},
		&storeBackupSource{name: "shadow", key: secondaryBackupKey, store: params.Store},
	}

	return watchdog.NewSessionGuard(sources, params.Config.Watchdog.LogoutSuppression, params.Logger)
}

// Module provides the liveness wiring for Fx.
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewStoreProbe, fx.As(new(watchdog.Probe))),
		fx.Annotate(NewStoreRecoverer, fx.As(new(watchdog.Recoverer))),
		NewSnapshotFunc,
		NewSessionGuard,
	),
)
