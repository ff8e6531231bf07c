package entity

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	DefaultCategory = "General"
	DayLayout       = "2006-01-02"
)

type LogEntry struct {
	ID        uuid.UUID `json:"id"`
	Activity  string    `json:"activity"`
	Minutes   int       `json:"minutes"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarshalJSON adds the read-only fields the dashboards render directly.
func (l LogEntry) MarshalJSON() ([]byte, error) {
	type plain LogEntry
	return sonic.ConfigDefault.Marshal(struct {
		plain
		FormattedDate    string `json:"formattedDate"`
		Hours            int    `json:"hours"`
		RemainingMinutes int    `json:"remainingMinutes"`
	}{
		plain:            plain(l),
		FormattedDate:    l.Date.Format(DayLayout),
		Hours:            l.Minutes / 60,
		RemainingMinutes: l.Minutes % 60,
	})
}

// LogFilter narrows Find. Empty strings and a nil Day match everything.
type LogFilter struct {
	Activity string
	Category string
	Day      *time.Time
}

type LogPage struct {
	Logs        []*LogEntry `json:"logs"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	TotalLogs   int         `json:"totalLogs"`
}

// Period bounds an aggregate. Zero From/To leave that side open.
type Period struct {
	From time.Time
	To   time.Time
}

func (p Period) Unbounded() bool {
	return p.From.IsZero() && p.To.IsZero()
}

type DailyTotal struct {
	TotalMinutes int `json:"totalMinutes"`
	TotalEntries int `json:"totalEntries"`
}

type ActivitySummary struct {
	Activity       string     `json:"activity"`
	TotalMinutes   int        `json:"totalMinutes"`
	Count          int        `json:"count"`
	AverageMinutes float64    `json:"averageMinutes"`
	LastUsed       *time.Time `json:"lastUsed,omitempty"`
}

type CategorySummary struct {
	Category       string  `json:"category"`
	TotalMinutes   int     `json:"totalMinutes"`
	Count          int     `json:"count"`
	AverageMinutes float64 `json:"averageMinutes"`
}

// DayTotal is one point of a weekly or trend series.
type DayTotal struct {
	Day          string `json:"day"`
	TotalMinutes int    `json:"totalMinutes"`
	Count        int    `json:"count"`
}

type Overview struct {
	TotalLogs            int        `json:"totalLogs"`
	TotalMinutes         int        `json:"totalMinutes"`
	UniqueActivities     int        `json:"uniqueActivities"`
	UniqueCategories     int        `json:"uniqueCategories"`
	FirstLogDate         *time.Time `json:"firstLogDate"`
	LastLogDate          *time.Time `json:"lastLogDate"`
	AverageMinutesPerLog int        `json:"averageMinutesPerLog"`
}

type StatsOverview struct {
	Overview
	ActivitySummary   []ActivitySummary `json:"activitySummary"`
	MostProductiveDay *DayTotal         `json:"mostProductiveDay"`
	LongestSession    *LogEntry         `json:"longestSession"`
	WeeklyAverage     float64           `json:"weeklyAverage"`
}

type DayLog struct {
	Logs            []*LogEntry       `json:"logs"`
	DailyTotal      int               `json:"dailyTotal"`
	TotalEntries    int               `json:"totalEntries"`
	ActivitySummary []ActivitySummary `json:"activitySummary"`
}

type TodaySummary struct {
	Logs            []*LogEntry       `json:"logs"`
	TotalMinutes    int               `json:"totalMinutes"`
	TotalEntries    int               `json:"totalEntries"`
	ActivitySummary []ActivitySummary `json:"activitySummary"`
}

type YesterdaySummary struct {
	TotalMinutes int `json:"totalMinutes"`
}

type Dashboard struct {
	Today            TodaySummary      `json:"today"`
	Yesterday        YesterdaySummary  `json:"yesterday"`
	WeekStats        []DayTotal        `json:"weekStats"`
	RecentActivities []ActivitySummary `json:"recentActivities"`
	TopCategories    []CategorySummary `json:"topCategories"`
}

type Insights struct {
	WeekAverage         float64           `json:"weekAverage"`
	MostProductiveDay   *DayTotal         `json:"mostProductiveDay"`
	LongestSession      *LogEntry         `json:"longestSession"`
	ActivityConsistency []ActivitySummary `json:"activityConsistency"`
}
