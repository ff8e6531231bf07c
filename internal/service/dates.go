package service

import (
	"time"

	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/pkg/entity"
)

// StartOfDay returns local midnight of the day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last representable instant of the day t falls on.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDay accepts YYYY-MM-DD (taken as that calendar day in loc) or an
// RFC 3339 timestamp (converted to loc first) and returns the day's start.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(entity.DayLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidDate
	}
	return StartOfDay(t, loc), nil
}

func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(entity.DayLayout)
}

// LastDays is the window of n calendar days ending with the day of now.
func LastDays(now time.Time, n int, loc *time.Location) entity.Period {
	today := StartOfDay(now, loc)
	return entity.Period{
		From: today.AddDate(0, 0, -(n - 1)),
		To:   EndOfDay(today, loc),
	}
}
