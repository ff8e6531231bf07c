package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/timelog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogsRepoFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repo, err := repository.NewLogsRepoFromConfig(repository.BackendConfig{Type: repository.MemoryBackend}, nil)
		require.NoError(t, err)
		assert.IsType(t, &repository.MemoryLogsRepository{}, repo)
	})
	t.Run("sqlite", func(t *testing.T) {
		repo, err := repository.NewLogsRepoFromConfig(repository.BackendConfig{
			Type:       repository.SQLiteBackend,
			SQLitePath: filepath.Join(t.TempDir(), "logs.db"),
			Location:   time.UTC,
		}, nil)
		require.NoError(t, err)
		sqliteRepo, ok := repo.(*repository.SQLiteLogsRepository)
		require.True(t, ok)
		sqliteRepo.Close()
	})
	t.Run("unknown backend", func(t *testing.T) {
		_, err := repository.NewLogsRepoFromConfig(repository.BackendConfig{Type: "mongo"}, nil)
		assert.Error(t, err)
	})
}

func TestPGCfgConnString(t *testing.T) {
	cfg := repository.PGCfg{Address: "localhost:5432", Username: "u", Password: "p", DB: "timelog"}
	assert.Equal(t, "postgresql://u:p@localhost:5432/timelog", cfg.ConnString())
	cfg.SSLMode = "disable"
	assert.Equal(t, "postgresql://u:p@localhost:5432/timelog?sslmode=disable", cfg.ConnString())
}
