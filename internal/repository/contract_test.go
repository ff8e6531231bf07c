package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock returns strictly increasing instants so creation order is
// observable regardless of timer resolution.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func ids(logs []*entity.LogEntry) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(logs))
	for _, l := range logs {
		result = append(result, l.ID)
	}
	return result
}

// exerciseLogsRepo runs the behaviour every store has to share.
func exerciseLogsRepo(t *testing.T, repo repository.LogsRepositoryI, loc *time.Location) {
	ctx := context.Background()
	day1 := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	day2 := day1.AddDate(0, 0, 1)
	e1 := &entity.LogEntry{ID: uuid.New(), Activity: "Reading", Minutes: 30, Date: day1, Category: "Study", Tags: []string{"books", "go"}}
	e2 := &entity.LogEntry{ID: uuid.New(), Activity: "Running", Minutes: 45, Date: day2, Category: "Health", Tags: []string{}}
	e3 := &entity.LogEntry{ID: uuid.New(), Activity: "reading club", Minutes: 60, Date: day2, Category: "Study", Tags: nil, Notes: "monthly meetup"}

	t.Run("create", func(t *testing.T) {
		for _, e := range []*entity.LogEntry{e1, e2, e3} {
			require.NoError(t, repo.Create(ctx, e))
			assert.False(t, e.CreatedAt.IsZero())
			assert.True(t, e.CreatedAt.Equal(e.UpdatedAt))
		}
	})
	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, e1.ID)
		require.NoError(t, err)
		assert.Equal(t, e1.Activity, got.Activity)
		assert.Equal(t, e1.Minutes, got.Minutes)
		assert.True(t, e1.Date.Equal(got.Date))
		h, m, sec := got.Date.Clock()
		assert.Equal(t, [3]int{0, 0, 0}, [3]int{h, m, sec})
		raw, err := sonic.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"formattedDate":"2024-03-10"`)
		assert.Equal(t, e1.Category, got.Category)
		assert.Equal(t, e1.Tags, got.Tags)

		got, err = repo.GetByID(ctx, e3.ID)
		require.NoError(t, err)
		assert.Equal(t, "monthly meetup", got.Notes)
		assert.NotNil(t, got.Tags)
		assert.Empty(t, got.Tags)

		_, err = repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("find pages newest first", func(t *testing.T) {
		logs, total, err := repo.Find(ctx, entity.LogFilter{}, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, []uuid.UUID{e3.ID, e2.ID}, ids(logs))

		logs, total, err = repo.Find(ctx, entity.LogFilter{}, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, []uuid.UUID{e1.ID}, ids(logs))

		logs, total, err = repo.Find(ctx, entity.LogFilter{}, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, logs)
	})
	t.Run("find filters", func(t *testing.T) {
		_, total, err := repo.Find(ctx, entity.LogFilter{Activity: "READ"}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		logs, total, err := repo.Find(ctx, entity.LogFilter{Category: "stud"}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.ElementsMatch(t, []uuid.UUID{e1.ID, e3.ID}, ids(logs))

		logs, total, err = repo.Find(ctx, entity.LogFilter{Day: &day2}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, []uuid.UUID{e3.ID, e2.ID}, ids(logs))

		logs, total, err = repo.Find(ctx, entity.LogFilter{Activity: "run", Day: &day1}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, logs)
	})
	t.Run("find by date range", func(t *testing.T) {
		logs, err := repo.FindByDateRange(ctx, day1, day1.AddDate(0, 0, 1).Add(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{e1.ID}, ids(logs))

		logs, err = repo.FindByDateRange(ctx, day1, day2)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{e1.ID, e2.ID, e3.ID}, ids(logs))

		logs, err = repo.FindByDateRange(ctx, day2.AddDate(0, 0, 1), day2.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
	t.Run("find all ordered by date then creation", func(t *testing.T) {
		logs, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{e1.ID, e2.ID, e3.ID}, ids(logs))
	})
	t.Run("update", func(t *testing.T) {
		changed := *e2
		changed.Minutes = 50
		changed.Tags = []string{"outdoor"}
		require.NoError(t, repo.Update(ctx, &changed))
		got, err := repo.GetByID(ctx, e2.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, got.Minutes)
		assert.Equal(t, []string{"outdoor"}, got.Tags)
		assert.True(t, got.CreatedAt.Equal(e2.CreatedAt))
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

		err = repo.Update(ctx, &entity.LogEntry{ID: uuid.New(), Activity: "x", Minutes: 1, Date: day1, Category: "General"})
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		removed, err := repo.Delete(ctx, e1.ID)
		require.NoError(t, err)
		assert.Equal(t, e1.ID, removed.ID)
		assert.Equal(t, e1.Activity, removed.Activity)

		_, err = repo.GetByID(ctx, e1.ID)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
		_, err = repo.Delete(ctx, e1.ID)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)

		logs, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})
}
