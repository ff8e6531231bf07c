package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timelog/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/limbo/timelog/internal/service LogsServiceI,StatsServiceI,DashboardServiceI

type CreateLogRequest struct {
	Activity string   `validate:"notblank,max=100"`
	Minutes  int      `validate:"min=1,max=1440"`
	Date     string   `validate:"omitempty,isodate"`
	Notes    string   `validate:"max=500"`
	Category string   `validate:"max=50"`
	Tags     []string `validate:"tagsize=30"`
}

// UpdateLogRequest replaces only the fields that are set.
type UpdateLogRequest struct {
	Activity *string   `validate:"omitnil,notblank,max=100"`
	Minutes  *int      `validate:"omitnil,min=1,max=1440"`
	Date     *string   `validate:"omitnil,isodate"`
	Notes    *string   `validate:"omitnil,max=500"`
	Category *string   `validate:"omitnil,max=50"`
	Tags     *[]string `validate:"omitnil,tagsize=30"`
}

// LogsQuery holds the raw list filters. Empty fields match everything.
type LogsQuery struct {
	Activity string
	Category string
	Date     string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type LogsServiceI interface {
	// Validates request, normalizes date to the start of day and stores new entry
	CreateLog(ctx context.Context, req *CreateLogRequest) (*entity.LogEntry, error)
	// Validates and applies only supplied fields
	UpdateLog(ctx context.Context, id uuid.UUID, req *UpdateLogRequest) (*entity.LogEntry, error)
	// Removes entry and gives it back
	DeleteLog(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error)
	// Newest first page of entries matching query
	ListLogs(ctx context.Context, query LogsQuery, pagination PaginationOpts) (*entity.LogPage, error)
	// Entries of the given day, newest first
	GetLogsByDate(ctx context.Context, day time.Time) ([]*entity.LogEntry, error)
}

type StatsServiceI interface {
	DailyTotal(ctx context.Context, day time.Time) (entity.DailyTotal, error)
	// Summary for the given day, or over all history when day is nil
	ActivitySummary(ctx context.Context, day *time.Time) ([]entity.ActivitySummary, error)
	CategorySummary(ctx context.Context, period entity.Period) ([]entity.CategorySummary, error)
	// Per-day totals between start and end days inclusive, days without entries omitted
	WeeklySeries(ctx context.Context, start, end time.Time) ([]entity.DayTotal, error)
	MostProductiveDay(ctx context.Context) (*entity.DayTotal, error)
	LongestSession(ctx context.Context) (*entity.LogEntry, error)
	// Mean of day totals over the 7 days ending at ref, counting only days with entries
	WeeklyAverage(ctx context.Context, ref time.Time) (float64, error)
	Overview(ctx context.Context) (entity.Overview, error)
	// Activities by total minutes over the last days (all history when days <= 0)
	TopActivities(ctx context.Context, days, limit int) ([]entity.ActivitySummary, error)
	// Per-day totals for the last days ending today
	Trends(ctx context.Context, days int) ([]entity.DayTotal, error)
	// Activities by last use
	RecentActivities(ctx context.Context, limit int) ([]entity.ActivitySummary, error)
	// Activities by number of entries
	ActivityConsistency(ctx context.Context, limit int) ([]entity.ActivitySummary, error)
}

type DashboardServiceI interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	Insights(ctx context.Context) (*entity.Insights, error)
	StatsOverview(ctx context.Context) (*entity.StatsOverview, error)
	DayLog(ctx context.Context, day time.Time) (*entity.DayLog, error)
}
