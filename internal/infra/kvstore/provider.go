package kvstore

import (
	"context"
	"log/slog"

	"laundrify/config"
	"laundrify/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in storage config.
const (
	ProviderMemory = "memory"
	ProviderSQLite = "sqlite"
	ProviderRedis  = "redis"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates a KeyValueStore based on configuration
func NewStore(params StoreParams) (service.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store service.KeyValueStore
	var err error

	switch cfg.Provider {
	case ProviderMemory:
		logger.Info("Using in-memory address store")
		store = NewMemoryStore()

	case ProviderSQLite:
		if cfg.SQLite.Path == "" {
			return nil, errors.New("sqlite path is required for sqlite provider")
		}
		logger.Info("Using sqlite address store",
			slog.String("path", cfg.SQLite.Path),
		)

		store, err = NewSQLiteStore(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}

	case ProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using redis address store",
			slog.String("addr", cfg.Redis.Addr),
		)

		store, err = NewRedisStore(params.Ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing address store")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the kvstore FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
