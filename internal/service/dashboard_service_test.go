package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/timelog/internal/service"
	"github.com/limbo/timelog/internal/service/mocks"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogsServiceI(ctrl)
	stats := mocks.NewMockStatsServiceI(ctrl)
	ds := service.NewDashboardService(logs, stats, testLoc).WithClock(fixedClock)
	ctx := context.Background()

	today := time.Date(2024, 3, 13, 0, 0, 0, 0, testLoc)
	yesterday := time.Date(2024, 3, 12, 0, 0, 0, 0, testLoc)
	// 13 March 2024 is a Wednesday, the week starts on Sunday the 10th.
	weekStart := time.Date(2024, 3, 10, 0, 0, 0, 0, testLoc)
	weekEnd := time.Date(2024, 3, 16, 0, 0, 0, 0, testLoc)
	todayLogs := []*entity.LogEntry{{ID: uuid.New(), Activity: "Coding", Minutes: 90, Date: today}}
	categories := []entity.CategorySummary{
		{Category: "a", TotalMinutes: 6}, {Category: "b", TotalMinutes: 5}, {Category: "c", TotalMinutes: 4},
		{Category: "d", TotalMinutes: 3}, {Category: "e", TotalMinutes: 2}, {Category: "f", TotalMinutes: 1},
	}

	testCases := []struct {
		Name         string
		MockPrepFunc func()
		Check        func(t *testing.T, d *entity.Dashboard, err error)
	}{
		{
			Name: "success",
			MockPrepFunc: func() {
				logs.EXPECT().GetLogsByDate(gomock.Any(), today).Return(todayLogs, nil)
				stats.EXPECT().DailyTotal(gomock.Any(), today).Return(entity.DailyTotal{TotalMinutes: 90, TotalEntries: 1}, nil)
				stats.EXPECT().ActivitySummary(gomock.Any(), &today).Return([]entity.ActivitySummary{{Activity: "Coding", TotalMinutes: 90, Count: 1}}, nil)
				stats.EXPECT().DailyTotal(gomock.Any(), yesterday).Return(entity.DailyTotal{TotalMinutes: 45, TotalEntries: 2}, nil)
				stats.EXPECT().WeeklySeries(gomock.Any(), weekStart, weekEnd).Return([]entity.DayTotal{{Day: "2024-03-13", TotalMinutes: 90, Count: 1}}, nil)
				stats.EXPECT().RecentActivities(gomock.Any(), 5).Return([]entity.ActivitySummary{{Activity: "Coding"}}, nil)
				stats.EXPECT().CategorySummary(gomock.Any(), entity.Period{}).Return(categories, nil)
			},
			Check: func(t *testing.T, d *entity.Dashboard, err error) {
				require.NoError(t, err)
				assert.Equal(t, todayLogs, d.Today.Logs)
				assert.Equal(t, 90, d.Today.TotalMinutes)
				assert.Equal(t, 1, d.Today.TotalEntries)
				assert.Len(t, d.Today.ActivitySummary, 1)
				assert.Equal(t, 45, d.Yesterday.TotalMinutes)
				assert.Len(t, d.WeekStats, 1)
				assert.Len(t, d.RecentActivities, 1)
				assert.Equal(t, categories[:5], d.TopCategories)
			},
		},
		{
			Name: "one part fails",
			MockPrepFunc: func() {
				logs.EXPECT().GetLogsByDate(gomock.Any(), gomock.Any()).Return(todayLogs, nil).AnyTimes()
				stats.EXPECT().DailyTotal(gomock.Any(), gomock.Any()).Return(entity.DailyTotal{}, nil).AnyTimes()
				stats.EXPECT().ActivitySummary(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				stats.EXPECT().WeeklySeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("storage down")).AnyTimes()
				stats.EXPECT().RecentActivities(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				stats.EXPECT().CategorySummary(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			Check: func(t *testing.T, d *entity.Dashboard, err error) {
				assert.Error(t, err)
				assert.Nil(t, d)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			d, err := ds.Dashboard(ctx)
			tc.Check(t, d, err)
		})
	}
}

func TestInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogsServiceI(ctrl)
	stats := mocks.NewMockStatsServiceI(ctrl)
	ds := service.NewDashboardService(logs, stats, testLoc).WithClock(fixedClock)
	today := time.Date(2024, 3, 13, 0, 0, 0, 0, testLoc)
	longest := &entity.LogEntry{ID: uuid.New(), Minutes: 300}

	stats.EXPECT().WeeklyAverage(gomock.Any(), today).Return(72.5, nil)
	stats.EXPECT().MostProductiveDay(gomock.Any()).Return(&entity.DayTotal{Day: "2024-03-01", TotalMinutes: 400}, nil)
	stats.EXPECT().LongestSession(gomock.Any()).Return(longest, nil)
	stats.EXPECT().ActivityConsistency(gomock.Any(), 3).Return([]entity.ActivitySummary{{Activity: "Coding", Count: 9}}, nil)

	insights, err := ds.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 72.5, insights.WeekAverage)
	assert.Equal(t, "2024-03-01", insights.MostProductiveDay.Day)
	assert.Equal(t, longest, insights.LongestSession)
	assert.Len(t, insights.ActivityConsistency, 1)
}

func TestStatsOverviewAndDayLog(t *testing.T) {
	ctx := context.Background()
	stats, logs, _ := newStatsFixture(t,
		seed{"Coding", 60, "2024-03-13", "Work"},
		seed{"Coding", 30, "2024-03-13", "Work"},
		seed{"Reading", 45, "2024-03-11", ""},
	)
	ds := service.NewDashboardService(logs, stats, testLoc).WithClock(fixedClock)

	t.Run("overview", func(t *testing.T) {
		ov, err := ds.StatsOverview(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, ov.TotalLogs)
		assert.Equal(t, 135, ov.TotalMinutes)
		assert.Equal(t, 45, ov.AverageMinutesPerLog)
		require.Len(t, ov.ActivitySummary, 2)
		assert.Equal(t, "Coding", ov.ActivitySummary[0].Activity)
		assert.Equal(t, "2024-03-13", ov.MostProductiveDay.Day)
		assert.Equal(t, 60, ov.LongestSession.Minutes)
		// (90 + 45) / 2 days with entries
		assert.Equal(t, 67.5, ov.WeeklyAverage)
	})
	t.Run("day log", func(t *testing.T) {
		dl, err := ds.DayLog(ctx, time.Date(2024, 3, 13, 9, 0, 0, 0, testLoc))
		require.NoError(t, err)
		assert.Len(t, dl.Logs, 2)
		assert.Equal(t, 90, dl.DailyTotal)
		assert.Equal(t, 2, dl.TotalEntries)
		require.Len(t, dl.ActivitySummary, 1)
		assert.Equal(t, 2, dl.ActivitySummary[0].Count)
	})
	t.Run("dashboard over memory store", func(t *testing.T) {
		d, err := ds.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 90, d.Today.TotalMinutes)
		assert.Equal(t, 0, d.Yesterday.TotalMinutes)
		assert.Equal(t, []entity.DayTotal{
			{Day: "2024-03-11", TotalMinutes: 45, Count: 1},
			{Day: "2024-03-13", TotalMinutes: 90, Count: 2},
		}, d.WeekStats)
		require.Len(t, d.TopCategories, 2)
		assert.Equal(t, "Work", d.TopCategories[0].Category)
		require.Len(t, d.RecentActivities, 2)
		assert.Equal(t, "Reading", d.RecentActivities[0].Activity)
	})
}
