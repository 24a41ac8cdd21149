package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/bodmaslab/bodmas-master/internal/storage"
	"github.com/bodmaslab/bodmas-master/internal/storage/pg"
)

type StorageConfig struct {
	Enabled bool
	storage.Type
	Pg     *pg.PoolConfig
	Sqlite *SqliteConfig
}

type SqliteConfig struct {
	Path string
}

const sqliteDefaultPath = "bodmas.db"

// LoadEnv reads the attempt storage configuration from the environment.
// An unset STORAGE_TYPE disables attempt tracking.
func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		return &StorageConfig{Enabled: false}, nil
	}
	if storageType != storage.PG && storageType != storage.SQLite && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.SQLite, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if maxConns := os.Getenv("PG_MAX_CONNS"); maxConns != "" {
			parsed, err := strconv.ParseInt(maxConns, 10, 32)
			if err != nil {
				slog.Error("Invalid PG_MAX_CONNS environment variable value", "value", maxConns)
				return nil, fmt.Errorf("invalid PG_MAX_CONNS environment variable value: %s", maxConns)
			}
			pgCfg.MaxConns = int32(parsed)
		}
	}

	var sqliteCfg *SqliteConfig
	if storageType == storage.SQLite {
		sqliteCfg = &SqliteConfig{
			Path: os.Getenv("SQLITE_PATH"),
		}
		if sqliteCfg.Path == "" {
			sqliteCfg.Path = sqliteDefaultPath
		}
	}

	return &StorageConfig{
		Enabled: true,
		Type:    storageType,
		Pg:      pgCfg,
		Sqlite:  sqliteCfg,
	}, nil
}
