package service

import (
	"context"
	"log"
	"time"

	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/pkg/entity"
)

const weekDays = 7

// Bounds used when only one side of a period is given.
var (
	openFrom = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	openTo   = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// StatsService recomputes every aggregate from a fresh scan of the store.
type StatsService struct {
	repo repository.LogsRepositoryI
	loc  *time.Location
	now  func() time.Time
}

func NewStatsService(logsRepo repository.LogsRepositoryI, loc *time.Location) *StatsService {
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{
		repo: logsRepo,
		loc:  loc,
		now:  time.Now,
	}
}

func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) scanDay(ctx context.Context, day time.Time) ([]*entity.LogEntry, error) {
	logs, err := ss.repo.FindByDateRange(ctx, StartOfDay(day, ss.loc), EndOfDay(day, ss.loc))
	if err != nil {
		return nil, storeError("scan day", err)
	}
	return logs, nil
}

func (ss *StatsService) scanPeriod(ctx context.Context, period entity.Period) ([]*entity.LogEntry, error) {
	var (
		logs []*entity.LogEntry
		err  error
	)
	if period.Unbounded() {
		logs, err = ss.repo.FindAll(ctx)
	} else {
		from, to := period.From, period.To
		if from.IsZero() {
			from = openFrom
		}
		if to.IsZero() {
			to = openTo
		}
		logs, err = ss.repo.FindByDateRange(ctx, from, to)
	}
	if err != nil {
		return nil, storeError("scan period", err)
	}
	return logs, nil
}

func (ss *StatsService) DailyTotal(ctx context.Context, day time.Time) (entity.DailyTotal, error) {
	logs, err := ss.scanDay(ctx, day)
	if err != nil {
		return entity.DailyTotal{}, err
	}
	return dailyTotal(logs), nil
}

func (ss *StatsService) ActivitySummary(ctx context.Context, day *time.Time) ([]entity.ActivitySummary, error) {
	var (
		logs []*entity.LogEntry
		err  error
	)
	if day != nil {
		logs, err = ss.scanDay(ctx, *day)
	} else {
		logs, err = ss.scanPeriod(ctx, entity.Period{})
	}
	if err != nil {
		return nil, err
	}
	return summarizeActivities(logs), nil
}

func (ss *StatsService) CategorySummary(ctx context.Context, period entity.Period) ([]entity.CategorySummary, error) {
	logs, err := ss.scanPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return summarizeCategories(logs), nil
}

func (ss *StatsService) WeeklySeries(ctx context.Context, start, end time.Time) ([]entity.DayTotal, error) {
	from, to := StartOfDay(start, ss.loc), EndOfDay(end, ss.loc)
	if from.After(to) {
		return nil, errorvalues.ErrInvalidRange
	}
	logs, err := ss.scanPeriod(ctx, entity.Period{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return seriesByDay(logs, ss.loc), nil
}

func (ss *StatsService) MostProductiveDay(ctx context.Context) (*entity.DayTotal, error) {
	logs, err := ss.scanPeriod(ctx, entity.Period{})
	if err != nil {
		return nil, err
	}
	return mostProductive(seriesByDay(logs, ss.loc)), nil
}

func (ss *StatsService) LongestSession(ctx context.Context) (*entity.LogEntry, error) {
	logs, err := ss.scanPeriod(ctx, entity.Period{})
	if err != nil {
		return nil, err
	}
	return longestSession(logs), nil
}

func (ss *StatsService) WeeklyAverage(ctx context.Context, ref time.Time) (float64, error) {
	logs, err := ss.scanPeriod(ctx, LastDays(ref, weekDays, ss.loc))
	if err != nil {
		return 0, err
	}
	return seriesAverage(seriesByDay(logs, ss.loc)), nil
}

func (ss *StatsService) Overview(ctx context.Context) (entity.Overview, error) {
	logs, err := ss.scanPeriod(ctx, entity.Period{})
	if err != nil {
		return entity.Overview{}, err
	}
	return overview(logs), nil
}

func (ss *StatsService) TopActivities(ctx context.Context, days, limit int) ([]entity.ActivitySummary, error) {
	period := entity.Period{}
	if days > 0 {
		period = LastDays(ss.now(), days, ss.loc)
	}
	logs, err := ss.scanPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return limitTo(summarizeActivities(logs), limit), nil
}

func (ss *StatsService) Trends(ctx context.Context, days int) ([]entity.DayTotal, error) {
	if days < 1 {
		return nil, errorvalues.NewValidationError("days", "days must be positive")
	}
	logs, err := ss.scanPeriod(ctx, LastDays(ss.now(), days, ss.loc))
	if err != nil {
		return nil, err
	}
	return seriesByDay(logs, ss.loc), nil
}

func (ss *StatsService) RecentActivities(ctx context.Context, limit int) ([]entity.ActivitySummary, error) {
	logs, err := ss.scanPeriod(ctx, entity.Period{})
	if err != nil {
		return nil, err
	}
	return limitTo(byRecentUse(summarizeActivities(logs)), limit), nil
}

func (ss *StatsService) ActivityConsistency(ctx context.Context, limit int) ([]entity.ActivitySummary, error) {
	logs, err := ss.scanPeriod(ctx, entity.Period{})
	if err != nil {
		return nil, err
	}
	return limitTo(byCount(summarizeActivities(logs)), limit), nil
}
