// Package app assembles the pieces shared by the server and the CLI.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/janisto/widget-playground/internal/config"
	"github.com/janisto/widget-playground/internal/platform/firebase"
	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/storage"
)

// OpenStore connects the backend selected by cfg. The returned close
// function releases its resources and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		applog.LogWarn(ctx, "using in-memory store; state is lost on exit")
		return storage.NewMemoryStore(), noop, nil

	case config.BackendFirestore:
		clients, err := firebase.InitializeClients(ctx, cfg.Firebase)
		if err != nil {
			return nil, noop, fmt.Errorf("firestore backend: %w", err)
		}
		return storage.NewFirestoreStore(clients.Firestore, cfg.Namespace), clients.Close, nil

	case config.BackendRedis:
		client := storage.NewRedisClient(cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis backend: %w", err)
		}
		return storage.NewRedisStore(client, cfg.Namespace), client.Close, nil

	case config.BackendSQLite:
		s, err := storage.OpenSQLiteStore(ctx, cfg.SQLitePath, cfg.Namespace)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite backend: %w", err)
		}
		return s, s.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown STORE_BACKEND %q", config.ErrInvalid, cfg.Backend)
	}
}

// LogStore records which backend is serving which namespace.
func LogStore(ctx context.Context, cfg *config.Config) {
	applog.LogInfo(ctx, "store opened",
		zap.String("backend", cfg.Backend),
		zap.String("namespace", cfg.Namespace))
}
