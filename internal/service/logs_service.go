package service

import (
	"cmp"
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/pkg/entity"
)

type LogsService struct {
	repo repository.LogsRepositoryI
	loc  *time.Location
	now  func() time.Time
}

func NewLogsService(logsRepo repository.LogsRepositoryI, loc *time.Location) *LogsService {
	if logsRepo == nil {
		log.Fatal("provided nil logsRepo")
	}
	if loc == nil {
		loc = time.Local
	}
	InitValidator()
	return &LogsService{
		repo: logsRepo,
		loc:  loc,
		now:  time.Now,
	}
}

// WithClock replaces the source of "today" used for entries without a date.
func (ls *LogsService) WithClock(now func() time.Time) *LogsService {
	ls.now = now
	return ls
}

// trimTags trims every tag and drops the ones left empty.
func trimTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			result = append(result, t)
		}
	}
	return result
}

// storeError keeps not found and validation failures as they are and hides
// everything else behind a StorageError.
func storeError(op string, err error) error {
	var verr *errorvalues.ValidationError
	switch {
	case errors.Is(err, errorvalues.ErrLogNotFound):
		return errorvalues.ErrLogNotFound
	case errors.As(err, &verr):
		return verr
	}
	return errorvalues.NewStorageError(op, err)
}

func (ls *LogsService) CreateLog(ctx context.Context, req *CreateLogRequest) (*entity.LogEntry, error) {
	clean := CreateLogRequest{
		Activity: strings.TrimSpace(req.Activity),
		Minutes:  req.Minutes,
		Date:     strings.TrimSpace(req.Date),
		Notes:    strings.TrimSpace(req.Notes),
		Category: strings.TrimSpace(req.Category),
		Tags:     trimTags(req.Tags),
	}
	if err := validateStruct(&clean); err != nil {
		return nil, err
	}
	day := StartOfDay(ls.now(), ls.loc)
	if clean.Date != "" {
		parsed, err := ParseDay(clean.Date, ls.loc)
		if err != nil {
			return nil, errorvalues.NewValidationError("date", "date must be a valid ISO 8601 date")
		}
		day = parsed
	}
	if clean.Category == "" {
		clean.Category = entity.DefaultCategory
	}
	e := entity.LogEntry{
		ID:       uuid.New(),
		Activity: clean.Activity,
		Minutes:  clean.Minutes,
		Date:     day,
		Category: clean.Category,
		Tags:     clean.Tags,
		Notes:    clean.Notes,
	}
	if err := ls.repo.Create(ctx, &e); err != nil {
		return nil, storeError("create log entry", err)
	}
	return &e, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (ls *LogsService) UpdateLog(ctx context.Context, id uuid.UUID, req *UpdateLogRequest) (*entity.LogEntry, error) {
	clean := UpdateLogRequest{
		Activity: trimmed(req.Activity),
		Minutes:  req.Minutes,
		Date:     trimmed(req.Date),
		Notes:    trimmed(req.Notes),
		Category: trimmed(req.Category),
	}
	if req.Tags != nil {
		tags := trimTags(*req.Tags)
		clean.Tags = &tags
	}
	if err := validateStruct(&clean); err != nil {
		return nil, err
	}
	e, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get log entry", err)
	}
	if clean.Activity != nil {
		e.Activity = *clean.Activity
	}
	if clean.Minutes != nil {
		e.Minutes = *clean.Minutes
	}
	if clean.Notes != nil {
		e.Notes = *clean.Notes
	}
	if clean.Category != nil {
		e.Category = cmp.Or(*clean.Category, entity.DefaultCategory)
	}
	if clean.Tags != nil {
		e.Tags = *clean.Tags
	}
	e.Date = StartOfDay(e.Date, ls.loc)
	if clean.Date != nil {
		day, err := ParseDay(*clean.Date, ls.loc)
		if err != nil {
			return nil, errorvalues.NewValidationError("date", "date must be a valid ISO 8601 date")
		}
		e.Date = day
	}
	if err = ls.repo.Update(ctx, e); err != nil {
		return nil, storeError("update log entry", err)
	}
	return e, nil
}

func (ls *LogsService) DeleteLog(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	e, err := ls.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError("delete log entry", err)
	}
	return e, nil
}

func (ls *LogsService) ListLogs(ctx context.Context, query LogsQuery, pagination PaginationOpts) (*entity.LogPage, error) {
	filter := entity.LogFilter{
		Activity: strings.TrimSpace(query.Activity),
		Category: strings.TrimSpace(query.Category),
	}
	if query.Date != "" {
		day, err := ParseDay(strings.TrimSpace(query.Date), ls.loc)
		if err != nil {
			return nil, errorvalues.NewValidationError("date", "date must be a valid ISO 8601 date")
		}
		filter.Day = &day
	}
	if pagination.Limit < 1 {
		return nil, errorvalues.NewValidationError("limit", "limit must be positive")
	}
	pagination.Offset = max(pagination.Offset, 0)
	logs, total, err := ls.repo.Find(ctx, filter, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, storeError("find log entries", err)
	}
	return &entity.LogPage{
		Logs:        logs,
		TotalPages:  (total + pagination.Limit - 1) / pagination.Limit,
		CurrentPage: pagination.Offset/pagination.Limit + 1,
		TotalLogs:   total,
	}, nil
}

func (ls *LogsService) GetLogsByDate(ctx context.Context, day time.Time) ([]*entity.LogEntry, error) {
	logs, err := ls.repo.FindByDateRange(ctx, StartOfDay(day, ls.loc), EndOfDay(day, ls.loc))
	if err != nil {
		return nil, storeError("find log entries by date", err)
	}
	slices.SortStableFunc(logs, func(a, b *entity.LogEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return logs, nil
}
