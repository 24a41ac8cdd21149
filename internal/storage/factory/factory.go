package factory

import (
	"context"
	"fmt"

	"github.com/bodmaslab/bodmas-master/internal/storage"
	"github.com/bodmaslab/bodmas-master/internal/storage/in_mem"
	"github.com/bodmaslab/bodmas-master/internal/storage/pg"
	"github.com/bodmaslab/bodmas-master/internal/storage/sqlite"
	"github.com/bodmaslab/bodmas-master/pkg/server"
)

// NewStore creates a storage.Store and its health check based on the
// configured storage type.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		store, err := pg.NewAttemptStore(pool)
		if err != nil {
			return nil, nil, err
		}

		return store, pg.NewHealthChecker(pool), nil

	case storage.SQLite:
		store, err := sqlite.NewStore(cfg.Sqlite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}

		return store, server.NewOkHealthChecker(), nil

	case storage.InMem:
		return in_mem.NewInMemStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
