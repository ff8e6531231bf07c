package service

import (
	"context"
	"log"
	"time"

	"github.com/limbo/timelog/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivitiesLimit = 5
	topCategoriesLimit    = 5
	consistencyLimit      = 3
)

// DashboardService composes independent aggregates. The parts of one call are
// fetched concurrently and any failure fails the whole call.
type DashboardService struct {
	logs  LogsServiceI
	stats StatsServiceI
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(logs LogsServiceI, stats StatsServiceI, loc *time.Location) *DashboardService {
	if logs == nil || stats == nil {
		log.Fatal("provided nil service to dashboard")
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{
		logs:  logs,
		stats: stats,
		loc:   loc,
		now:   time.Now,
	}
}

func (ds *DashboardService) WithClock(now func() time.Time) *DashboardService {
	ds.now = now
	return ds
}

func (ds *DashboardService) today() time.Time {
	return StartOfDay(ds.now(), ds.loc)
}

func (ds *DashboardService) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	today := ds.today()
	yesterday := today.AddDate(0, 0, -1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, weekDays-1)

	var (
		result     entity.Dashboard
		todayTotal entity.DailyTotal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Today.Logs, err = ds.logs.GetLogsByDate(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		todayTotal, err = ds.stats.DailyTotal(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		result.Today.ActivitySummary, err = ds.stats.ActivitySummary(gctx, &today)
		return err
	})
	g.Go(func() error {
		total, err := ds.stats.DailyTotal(gctx, yesterday)
		result.Yesterday.TotalMinutes = total.TotalMinutes
		return err
	})
	g.Go(func() (err error) {
		result.WeekStats, err = ds.stats.WeeklySeries(gctx, weekStart, weekEnd)
		return err
	})
	g.Go(func() (err error) {
		result.RecentActivities, err = ds.stats.RecentActivities(gctx, recentActivitiesLimit)
		return err
	})
	g.Go(func() error {
		categories, err := ds.stats.CategorySummary(gctx, entity.Period{})
		result.TopCategories = limitTo(categories, topCategoriesLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.Today.TotalMinutes = todayTotal.TotalMinutes
	result.Today.TotalEntries = todayTotal.TotalEntries
	return &result, nil
}

func (ds *DashboardService) Insights(ctx context.Context) (*entity.Insights, error) {
	today := ds.today()
	var result entity.Insights
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.WeekAverage, err = ds.stats.WeeklyAverage(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		result.MostProductiveDay, err = ds.stats.MostProductiveDay(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.LongestSession, err = ds.stats.LongestSession(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.ActivityConsistency, err = ds.stats.ActivityConsistency(gctx, consistencyLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ds *DashboardService) StatsOverview(ctx context.Context) (*entity.StatsOverview, error) {
	today := ds.today()
	var result entity.StatsOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Overview, err = ds.stats.Overview(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.ActivitySummary, err = ds.stats.ActivitySummary(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		result.MostProductiveDay, err = ds.stats.MostProductiveDay(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.LongestSession, err = ds.stats.LongestSession(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.WeeklyAverage, err = ds.stats.WeeklyAverage(gctx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (ds *DashboardService) DayLog(ctx context.Context, day time.Time) (*entity.DayLog, error) {
	day = StartOfDay(day, ds.loc)
	var (
		result entity.DayLog
		total  entity.DailyTotal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Logs, err = ds.logs.GetLogsByDate(gctx, day)
		return err
	})
	g.Go(func() (err error) {
		total, err = ds.stats.DailyTotal(gctx, day)
		return err
	})
	g.Go(func() (err error) {
		result.ActivitySummary, err = ds.stats.ActivitySummary(gctx, &day)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.DailyTotal = total.TotalMinutes
	result.TotalEntries = total.TotalEntries
	return &result, nil
}
