package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/internal/repository/mocks"
	"github.com/limbo/timelog/internal/service"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	testLoc = time.FixedZone("UTC+2", 2*60*60)
	// Wednesday afternoon
	testNow = time.Date(2024, 3, 13, 15, 30, 0, 0, testLoc)
)

func fixedClock() time.Time {
	return testNow
}

func ptr[T any](v T) *T {
	return &v
}

func fieldNames(err error) []string {
	var verr *errorvalues.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func newMemoryLogsService() (*service.LogsService, *repository.MemoryLogsRepository) {
	repo := repository.NewMemoryLogsRepo()
	return service.NewLogsService(repo, testLoc).WithClock(fixedClock), repo
}

func TestCreateLogValidation(t *testing.T) {
	s, _ := newMemoryLogsService()
	ctx := context.Background()
	testCases := []struct {
		Name           string
		Req            service.CreateLogRequest
		ExpectedFields []string
	}{
		{
			Name:           "blank activity",
			Req:            service.CreateLogRequest{Activity: "   ", Minutes: 10},
			ExpectedFields: []string{"activity"},
		},
		{
			Name:           "activity too long",
			Req:            service.CreateLogRequest{Activity: strings.Repeat("a", 101), Minutes: 10},
			ExpectedFields: []string{"activity"},
		},
		{
			Name:           "zero minutes",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 0},
			ExpectedFields: []string{"minutes"},
		},
		{
			Name:           "minutes over a day",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 1441},
			ExpectedFields: []string{"minutes"},
		},
		{
			Name:           "bad date",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 10, Date: "13/03/2024"},
			ExpectedFields: []string{"date"},
		},
		{
			Name:           "notes too long",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 10, Notes: strings.Repeat("n", 501)},
			ExpectedFields: []string{"notes"},
		},
		{
			Name:           "category too long",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 10, Category: strings.Repeat("c", 51)},
			ExpectedFields: []string{"category"},
		},
		{
			Name:           "tag too long",
			Req:            service.CreateLogRequest{Activity: "Coding", Minutes: 10, Tags: []string{"ok", strings.Repeat("t", 31)}},
			ExpectedFields: []string{"tags"},
		},
		{
			Name:           "every field reported",
			Req:            service.CreateLogRequest{Activity: "", Minutes: -5, Date: "yesterday"},
			ExpectedFields: []string{"activity", "minutes", "date"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := s.CreateLog(ctx, &tc.Req)
			var verr *errorvalues.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.ExpectedFields, fieldNames(err))
		})
	}
}

func TestCreateLog(t *testing.T) {
	ctx := context.Background()
	t.Run("date normalized to start of day", func(t *testing.T) {
		s, repo := newMemoryLogsService()
		inputs := []string{"2024-03-10", "2024-03-10T23:15:00+02:00", "2024-03-10T08:00:00Z"}
		for _, in := range inputs {
			e, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 30, Date: in})
			require.NoError(t, err, in)
			assert.True(t, time.Date(2024, 3, 10, 0, 0, 0, 0, testLoc).Equal(e.Date), in)
			stored, err := repo.GetByID(ctx, e.ID)
			require.NoError(t, err)
			h, m, sec := stored.Date.In(testLoc).Clock()
			assert.Equal(t, 0, h+m+sec+stored.Date.Nanosecond(), in)
		}
	})
	t.Run("defaults", func(t *testing.T) {
		s, _ := newMemoryLogsService()
		e, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "  Coding  ", Minutes: 90})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, "Coding", e.Activity)
		assert.Equal(t, entity.DefaultCategory, e.Category)
		assert.Equal(t, []string{}, e.Tags)
		assert.True(t, time.Date(2024, 3, 13, 0, 0, 0, 0, testLoc).Equal(e.Date))
		assert.False(t, e.CreatedAt.IsZero())
	})
	t.Run("tags trimmed and blank ones dropped", func(t *testing.T) {
		s, _ := newMemoryLogsService()
		e, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 5, Tags: []string{" go ", "", "api"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "api"}, e.Tags)
	})
	t.Run("boundaries accepted", func(t *testing.T) {
		s, _ := newMemoryLogsService()
		for _, minutes := range []int{1, 1440} {
			_, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Sleep", Minutes: minutes})
			assert.NoError(t, err)
		}
	})
}

func TestCreateLogRepoErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLogsRepositoryI(ctrl)
	s := service.NewLogsService(repo, testLoc).WithClock(fixedClock)
	ctx := context.Background()
	req := service.CreateLogRequest{Activity: "Coding", Minutes: 30}
	testCases := []struct {
		Name         string
		MockPrepFunc func()
		Check        func(t *testing.T, err error)
	}{
		{
			Name: "storage error",
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			Check: func(t *testing.T, err error) {
				var serr *errorvalues.StorageError
				assert.ErrorAs(t, err, &serr)
			},
		},
		{
			Name: "constraint violation",
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.NewValidationError("minutes_range", "violates minutes_range"))
			},
			Check: func(t *testing.T, err error) {
				var verr *errorvalues.ValidationError
				assert.ErrorAs(t, err, &verr)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := s.CreateLog(ctx, &req)
			tc.Check(t, err)
		})
	}
	t.Run("invalid request never reaches store", func(t *testing.T) {
		_, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 2000})
		assert.Error(t, err)
	})
}

func TestUpdateLog(t *testing.T) {
	ctx := context.Background()
	s, repo := newMemoryLogsService()
	e, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 60, Date: "2024-03-12", Category: "Work", Tags: []string{"go"}, Notes: "api"})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Minutes: ptr(120)})
		require.NoError(t, err)
		assert.Equal(t, 120, updated.Minutes)
		assert.Equal(t, "Coding", updated.Activity)
		assert.Equal(t, "Work", updated.Category)
		assert.Equal(t, []string{"go"}, updated.Tags)
		assert.Equal(t, "api", updated.Notes)
		stored, err := repo.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, 120, stored.Minutes)
	})
	t.Run("date re-normalized", func(t *testing.T) {
		updated, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Date: ptr("2024-03-11T18:45:00+02:00")})
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 3, 11, 0, 0, 0, 0, testLoc).Equal(updated.Date))
	})
	t.Run("empty category falls back to default", func(t *testing.T) {
		updated, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Category: ptr("  "), Tags: &[]string{}})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultCategory, updated.Category)
		assert.Empty(t, updated.Tags)
	})
	t.Run("blank tags dropped", func(t *testing.T) {
		updated, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Tags: &[]string{"  ", " review ", ""}})
		require.NoError(t, err)
		assert.Equal(t, []string{"review"}, updated.Tags)
	})
	t.Run("minutes out of range rejected", func(t *testing.T) {
		for _, minutes := range []int{0, 1441} {
			_, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Minutes: ptr(minutes)})
			assert.Equal(t, []string{"minutes"}, fieldNames(err))
		}
		stored, err := repo.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, 120, stored.Minutes)
	})
	t.Run("blank activity rejected", func(t *testing.T) {
		_, err := s.UpdateLog(ctx, e.ID, &service.UpdateLogRequest{Activity: ptr(" ")})
		assert.Equal(t, []string{"activity"}, fieldNames(err))
	})
	t.Run("unknown id", func(t *testing.T) {
		_, err := s.UpdateLog(ctx, uuid.New(), &service.UpdateLogRequest{Minutes: ptr(10)})
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
}

func TestUpdateLogRepoErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLogsRepositoryI(ctrl)
	s := service.NewLogsService(repo, testLoc)
	ctx := context.Background()
	id := uuid.New()
	existing := entity.LogEntry{ID: id, Activity: "Coding", Minutes: 60, Date: time.Date(2024, 3, 12, 0, 0, 0, 0, testLoc), Category: "Work", Tags: []string{}}
	testCases := []struct {
		Name         string
		MockPrepFunc func()
		Check        func(t *testing.T, err error)
	}{
		{
			Name: "get fails",
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("db error"))
			},
			Check: func(t *testing.T, err error) {
				var serr *errorvalues.StorageError
				assert.ErrorAs(t, err, &serr)
			},
		},
		{
			Name: "removed in between",
			MockPrepFunc: func() {
				e := existing
				repo.EXPECT().GetByID(gomock.Any(), id).Return(&e, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrLogNotFound)
			},
			Check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
			},
		},
		{
			Name: "update fails",
			MockPrepFunc: func() {
				e := existing
				repo.EXPECT().GetByID(gomock.Any(), id).Return(&e, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			Check: func(t *testing.T, err error) {
				var serr *errorvalues.StorageError
				assert.ErrorAs(t, err, &serr)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := s.UpdateLog(ctx, id, &service.UpdateLogRequest{Minutes: ptr(30)})
			tc.Check(t, err)
		})
	}
}

func TestDeleteLog(t *testing.T) {
	ctx := context.Background()
	s, _ := newMemoryLogsService()
	e, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 60})
	require.NoError(t, err)

	removed, err := s.DeleteLog(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, removed.ID)

	_, err = s.DeleteLog(ctx, e.ID)
	assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	_, err = s.DeleteLog(ctx, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
}

func TestListLogs(t *testing.T) {
	ctx := context.Background()
	s, _ := newMemoryLogsService()
	for i, activity := range []string{"Coding", "Reading", "Code review", "Running", "Coding"} {
		date := "2024-03-12"
		if i%2 == 0 {
			date = "2024-03-13"
		}
		_, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: activity, Minutes: 10 * (i + 1), Date: date})
		require.NoError(t, err)
	}
	t.Run("pagination", func(t *testing.T) {
		page, err := s.ListLogs(ctx, service.LogsQuery{}, service.PaginationOpts{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, page.TotalLogs)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Len(t, page.Logs, 2)
	})
	t.Run("activity filter is case-insensitive substring", func(t *testing.T) {
		page, err := s.ListLogs(ctx, service.LogsQuery{Activity: "COD"}, service.PaginationOpts{Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalLogs)
		assert.Equal(t, 1, page.TotalPages)
	})
	t.Run("date filter", func(t *testing.T) {
		page, err := s.ListLogs(ctx, service.LogsQuery{Date: "2024-03-13"}, service.PaginationOpts{Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalLogs)
		for _, l := range page.Logs {
			assert.Equal(t, "2024-03-13", l.Date.In(testLoc).Format(entity.DayLayout))
		}
	})
	t.Run("empty result", func(t *testing.T) {
		page, err := s.ListLogs(ctx, service.LogsQuery{Category: "nothing"}, service.PaginationOpts{Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalLogs)
		assert.Equal(t, 0, page.TotalPages)
		assert.Empty(t, page.Logs)
	})
	t.Run("invalid date", func(t *testing.T) {
		_, err := s.ListLogs(ctx, service.LogsQuery{Date: "tomorrow"}, service.PaginationOpts{Limit: 20})
		assert.Equal(t, []string{"date"}, fieldNames(err))
	})
}

func TestGetLogsByDate(t *testing.T) {
	ctx := context.Background()
	s, repo := newMemoryLogsService()
	clock := testNow
	repo.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
	first, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Coding", Minutes: 60, Date: "2024-03-12"})
	require.NoError(t, err)
	second, err := s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Reading", Minutes: 30, Date: "2024-03-12"})
	require.NoError(t, err)
	_, err = s.CreateLog(ctx, &service.CreateLogRequest{Activity: "Running", Minutes: 30, Date: "2024-03-13"})
	require.NoError(t, err)

	logs, err := s.GetLogsByDate(ctx, time.Date(2024, 3, 12, 17, 0, 0, 0, testLoc))
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)
}
