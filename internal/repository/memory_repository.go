package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/pkg/entity"
)

// MemoryLogsRepository implements an in-memory store for development and testing.
type MemoryLogsRepository struct {
	mu      sync.RWMutex
	entries []*entity.LogEntry
	now     func() time.Time
}

var _ LogsRepositoryI = (*MemoryLogsRepository)(nil)

func NewMemoryLogsRepo() *MemoryLogsRepository {
	return &MemoryLogsRepository{now: time.Now}
}

// WithClock replaces the source of CreatedAt/UpdatedAt timestamps.
func (mr *MemoryLogsRepository) WithClock(now func() time.Time) *MemoryLogsRepository {
	mr.now = now
	return mr
}

func clone(e *entity.LogEntry) *entity.LogEntry {
	c := *e
	c.Tags = slices.Clone(e.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

func (mr *MemoryLogsRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(mr.entries, func(e *entity.LogEntry) bool { return e.ID == id })
}

func (mr *MemoryLogsRepository) Create(ctx context.Context, entry *entity.LogEntry) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	now := mr.now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	mr.entries = append(mr.entries, clone(entry))
	return nil
}

func (mr *MemoryLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	i := mr.indexOf(id)
	if i < 0 {
		return nil, errorvalues.ErrLogNotFound
	}
	return clone(mr.entries[i]), nil
}

func (mr *MemoryLogsRepository) Update(ctx context.Context, entry *entity.LogEntry) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	i := mr.indexOf(entry.ID)
	if i < 0 {
		return errorvalues.ErrLogNotFound
	}
	entry.CreatedAt = mr.entries[i].CreatedAt
	entry.UpdatedAt = mr.now()
	mr.entries[i] = clone(entry)
	return nil
}

func (mr *MemoryLogsRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	i := mr.indexOf(id)
	if i < 0 {
		return nil, errorvalues.ErrLogNotFound
	}
	removed := mr.entries[i]
	mr.entries = slices.Delete(mr.entries, i, i+1)
	return removed, nil
}

func matches(e *entity.LogEntry, filter entity.LogFilter) bool {
	if filter.Activity != "" && !strings.Contains(strings.ToLower(e.Activity), strings.ToLower(filter.Activity)) {
		return false
	}
	if filter.Category != "" && !strings.Contains(strings.ToLower(e.Category), strings.ToLower(filter.Category)) {
		return false
	}
	if filter.Day != nil {
		end := filter.Day.AddDate(0, 0, 1)
		if e.Date.Before(*filter.Day) || !e.Date.Before(end) {
			return false
		}
	}
	return true
}

func (mr *MemoryLogsRepository) Find(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	found := make([]*entity.LogEntry, 0)
	for _, e := range mr.entries {
		if matches(e, filter) {
			found = append(found, clone(e))
		}
	}
	// Newest first; insertion order breaks ties the same way.
	slices.Reverse(found)
	slices.SortStableFunc(found, func(a, b *entity.LogEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	total := len(found)
	if offset >= total {
		return []*entity.LogEntry{}, total, nil
	}
	end := min(offset+limit, total)
	return found[offset:end], total, nil
}

// sorted returns clones ordered by date then creation.
func (mr *MemoryLogsRepository) sorted(keep func(*entity.LogEntry) bool) []*entity.LogEntry {
	result := make([]*entity.LogEntry, 0)
	for _, e := range mr.entries {
		if keep(e) {
			result = append(result, clone(e))
		}
	}
	slices.SortStableFunc(result, func(a, b *entity.LogEntry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result
}

func (mr *MemoryLogsRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.LogEntry, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.sorted(func(e *entity.LogEntry) bool {
		return !e.Date.Before(from) && !e.Date.After(to)
	}), nil
}

func (mr *MemoryLogsRepository) FindAll(ctx context.Context) ([]*entity.LogEntry, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.sorted(func(*entity.LogEntry) bool { return true }), nil
}
