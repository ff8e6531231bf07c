package service

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/limbo/timelog/pkg/entity"
)

// Grouping helpers over a scanned set of entries. Input is expected in
// store order (date, then creation); groups keep first-seen order and every
// sort below is stable, so ties resolve to the earlier group.

func dailyTotal(logs []*entity.LogEntry) entity.DailyTotal {
	var total entity.DailyTotal
	for _, l := range logs {
		total.TotalMinutes += l.Minutes
		total.TotalEntries++
	}
	return total
}

func summarizeActivities(logs []*entity.LogEntry) []entity.ActivitySummary {
	index := make(map[string]int)
	result := make([]entity.ActivitySummary, 0)
	for _, l := range logs {
		i, ok := index[l.Activity]
		if !ok {
			i = len(result)
			index[l.Activity] = i
			result = append(result, entity.ActivitySummary{Activity: l.Activity})
		}
		s := &result[i]
		s.TotalMinutes += l.Minutes
		s.Count++
		if s.LastUsed == nil || l.CreatedAt.After(*s.LastUsed) {
			lastUsed := l.CreatedAt
			s.LastUsed = &lastUsed
		}
	}
	for i := range result {
		result[i].AverageMinutes = float64(result[i].TotalMinutes) / float64(result[i].Count)
	}
	slices.SortStableFunc(result, func(a, b entity.ActivitySummary) int {
		return cmp.Compare(b.TotalMinutes, a.TotalMinutes)
	})
	return result
}

func summarizeCategories(logs []*entity.LogEntry) []entity.CategorySummary {
	index := make(map[string]int)
	result := make([]entity.CategorySummary, 0)
	for _, l := range logs {
		i, ok := index[l.Category]
		if !ok {
			i = len(result)
			index[l.Category] = i
			result = append(result, entity.CategorySummary{Category: l.Category})
		}
		result[i].TotalMinutes += l.Minutes
		result[i].Count++
	}
	for i := range result {
		result[i].AverageMinutes = float64(result[i].TotalMinutes) / float64(result[i].Count)
	}
	slices.SortStableFunc(result, func(a, b entity.CategorySummary) int {
		return cmp.Compare(b.TotalMinutes, a.TotalMinutes)
	})
	return result
}

// seriesByDay groups by calendar day in loc, ascending. Days without entries
// are absent.
func seriesByDay(logs []*entity.LogEntry, loc *time.Location) []entity.DayTotal {
	index := make(map[string]int)
	result := make([]entity.DayTotal, 0)
	for _, l := range logs {
		key := DayKey(l.Date, loc)
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, entity.DayTotal{Day: key})
		}
		result[i].TotalMinutes += l.Minutes
		result[i].Count++
	}
	slices.SortFunc(result, func(a, b entity.DayTotal) int {
		return cmp.Compare(a.Day, b.Day)
	})
	return result
}

// mostProductive expects a chronological series; the earliest day wins ties.
func mostProductive(series []entity.DayTotal) *entity.DayTotal {
	if len(series) == 0 {
		return nil
	}
	best := series[0]
	for _, d := range series[1:] {
		if d.TotalMinutes > best.TotalMinutes {
			best = d
		}
	}
	return &best
}

func longestSession(logs []*entity.LogEntry) *entity.LogEntry {
	var best *entity.LogEntry
	for _, l := range logs {
		if best == nil || l.Minutes > best.Minutes {
			best = l
		}
	}
	return best
}

func seriesAverage(series []entity.DayTotal) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0
	for _, d := range series {
		sum += d.TotalMinutes
	}
	return float64(sum) / float64(len(series))
}

func overview(logs []*entity.LogEntry) entity.Overview {
	var (
		ov         entity.Overview
		activities = make(map[string]struct{})
		categories = make(map[string]struct{})
	)
	for _, l := range logs {
		ov.TotalLogs++
		ov.TotalMinutes += l.Minutes
		activities[l.Activity] = struct{}{}
		categories[l.Category] = struct{}{}
		if ov.FirstLogDate == nil || l.CreatedAt.Before(*ov.FirstLogDate) {
			first := l.CreatedAt
			ov.FirstLogDate = &first
		}
		if ov.LastLogDate == nil || l.CreatedAt.After(*ov.LastLogDate) {
			last := l.CreatedAt
			ov.LastLogDate = &last
		}
	}
	ov.UniqueActivities = len(activities)
	ov.UniqueCategories = len(categories)
	if ov.TotalLogs > 0 {
		ov.AverageMinutesPerLog = int(math.Round(float64(ov.TotalMinutes) / float64(ov.TotalLogs)))
	}
	return ov
}

func byRecentUse(summaries []entity.ActivitySummary) []entity.ActivitySummary {
	slices.SortStableFunc(summaries, func(a, b entity.ActivitySummary) int {
		return b.LastUsed.Compare(*a.LastUsed)
	})
	return summaries
}

func byCount(summaries []entity.ActivitySummary) []entity.ActivitySummary {
	slices.SortStableFunc(summaries, func(a, b entity.ActivitySummary) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return summaries
}

func limitTo[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
