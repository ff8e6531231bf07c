package repository

import (
	"errors"
	"log/slog"
	"time"
)

type BackendType string

const (
	PostgresBackend BackendType = "postgres"
	SQLiteBackend   BackendType = "sqlite"
	MemoryBackend   BackendType = "memory"
)

func (bt BackendType) IsValid() bool {
	switch bt {
	case PostgresBackend, SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

type BackendConfig struct {
	Type          BackendType
	Postgres      PGCfg
	MigrationsDir string
	SQLitePath    string
	Location      *time.Location
}

// NewLogsRepoFromConfig builds the store selected by cfg.Type.
func NewLogsRepoFromConfig(cfg BackendConfig, logger *slog.Logger) (LogsRepositoryI, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, errors.New("invalid backend type: " + string(cfg.Type))
	}
	switch cfg.Type {
	case PostgresBackend:
		if cfg.MigrationsDir != "" {
			if err := MigratePostgres(&cfg.Postgres, cfg.MigrationsDir); err != nil {
				return nil, err
			}
		}
		repo, err := NewLogsRepo(&cfg.Postgres, cfg.Location)
		if err != nil {
			return nil, err
		}
		logger.Info("initialized postgres backend", slog.String("address", cfg.Postgres.Address), slog.String("db", cfg.Postgres.DB))
		return repo, nil
	case SQLiteBackend:
		repo, err := NewSQLiteLogsRepo(cfg.SQLitePath, cfg.Location)
		if err != nil {
			return nil, err
		}
		logger.Info("initialized sqlite backend", slog.String("path", cfg.SQLitePath))
		return repo, nil
	default:
		logger.Warn("initialized in-memory backend, entries will not survive a restart")
		return NewMemoryLogsRepo(), nil
	}
}
