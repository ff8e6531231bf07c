package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T, path string, loc *time.Location) *repository.SQLiteLogsRepository {
	repo, err := repository.NewSQLiteLogsRepo(path, loc)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func TestSQLiteLogsRepo(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	repo := newSQLiteRepo(t, filepath.Join(t.TempDir(), "timelog.db"), loc)
	repo.WithClock(tickingClock(time.Date(2024, 3, 1, 9, 0, 0, 0, loc)))
	exerciseLogsRepo(t, repo, loc)
}

func TestSQLiteLogsRepoReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timelog.db")
	ctx := context.Background()
	e := &entity.LogEntry{ID: uuid.New(), Activity: "Piano", Minutes: 25, Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Category: "Music", Tags: []string{"scales"}}

	first, err := repository.NewSQLiteLogsRepo(path, time.UTC)
	require.NoError(t, err)
	require.NoError(t, first.Create(ctx, e))
	require.NoError(t, first.Close())

	// Migrations already applied; reopening must not fail.
	second := newSQLiteRepo(t, path, time.UTC)
	got, err := second.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Piano", got.Activity)
	assert.Equal(t, []string{"scales"}, got.Tags)
	assert.True(t, e.Date.Equal(got.Date))
	assert.Equal(t, time.UTC, got.Date.Location())
}
