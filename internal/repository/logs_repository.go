package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/pkg/cleanup"
	"github.com/limbo/timelog/pkg/entity"
)

// LogsRepository keeps log entries in PostgreSQL.
type LogsRepository struct {
	conn PgConnection
	loc  *time.Location
}

var _ LogsRepositoryI = (*LogsRepository)(nil)

// NewLogsRepo connects to PostgreSQL. Timestamps read back are reported in loc,
// or in the host zone when loc is nil.
func NewLogsRepo(cfg DBConfig, loc *time.Location) (*LogsRepository, error) {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for logsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for logsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LogsRepository{
		conn: pool,
		loc:  locationOrLocal(loc),
	}, nil
}

func NewLogsRepoWithConn(conn PgConnection, loc *time.Location) *LogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for logsRepo: " + err.Error())
	}
	return &LogsRepository{
		conn: conn,
		loc:  locationOrLocal(loc),
	}
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

type scanner interface {
	Scan(dest ...any) error
}

// scanLog reads one row. pgx decodes timestamptz in the host zone, so every
// instant is moved to the repository location.
func (lr *LogsRepository) scanLog(row scanner) (*entity.LogEntry, error) {
	var e entity.LogEntry
	err := row.Scan(&e.ID, &e.Activity, &e.Minutes, &e.Date, &e.Category, &e.Tags, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	e.Date = e.Date.In(lr.loc)
	e.CreatedAt = e.CreatedAt.In(lr.loc)
	e.UpdatedAt = e.UpdatedAt.In(lr.loc)
	return &e, nil
}

func (lr *LogsRepository) collectLogs(rows pgx.Rows) ([]*entity.LogEntry, error) {
	defer rows.Close()
	result := make([]*entity.LogEntry, 0)
	for rows.Next() {
		e, err := lr.scanLog(rows)
		if err != nil {
			return nil, errors.New("unmarshalling log entry error: " + err.Error())
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return result, nil
}

func (lr *LogsRepository) Create(ctx context.Context, entry *entity.LogEntry) error {
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	row := lr.conn.QueryRow(ctx, `INSERT INTO logs (id, activity, minutes, log_date, category, tags, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at;`,
		entry.ID,
		entry.Activity,
		entry.Minutes,
		entry.Date,
		entry.Category,
		entry.Tags,
		entry.Notes,
	)
	if err := row.Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation
			case "23514":
				return errorvalues.NewValidationError(pgErr.ConstraintName, "violates "+pgErr.ConstraintName)
			}
		}
		return errors.New("creating log entry db error: " + err.Error())
	}
	entry.CreatedAt = entry.CreatedAt.In(lr.loc)
	entry.UpdatedAt = entry.UpdatedAt.In(lr.loc)
	return nil
}

func (lr *LogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	row := lr.conn.QueryRow(ctx, `SELECT id, activity, minutes, log_date, category, tags, notes, created_at, updated_at FROM logs WHERE id = $1;`, id)
	e, err := lr.scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting log entry by id error: " + err.Error())
	}
	return e, nil
}

func (lr *LogsRepository) Update(ctx context.Context, entry *entity.LogEntry) error {
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	row := lr.conn.QueryRow(ctx, `UPDATE logs SET activity = $1, minutes = $2, log_date = $3, category = $4, tags = $5, notes = $6, updated_at = NOW() WHERE id = $7 RETURNING created_at, updated_at;`,
		entry.Activity,
		entry.Minutes,
		entry.Date,
		entry.Category,
		entry.Tags,
		entry.Notes,
		entry.ID,
	)
	if err := row.Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrLogNotFound
		}
		return errors.New("error updating log entry: " + err.Error())
	}
	entry.CreatedAt = entry.CreatedAt.In(lr.loc)
	entry.UpdatedAt = entry.UpdatedAt.In(lr.loc)
	return nil
}

func (lr *LogsRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	row := lr.conn.QueryRow(ctx, `DELETE FROM logs WHERE id = $1 RETURNING id, activity, minutes, log_date, category, tags, notes, created_at, updated_at;`, id)
	e, err := lr.scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("error deleting log entry: " + err.Error())
	}
	return e, nil
}

// Find runs the count and the page query in one transaction so that the
// total always matches the page it is reported with.
func (lr *LogsRepository) Find(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error) {
	var dayStart, dayEnd *time.Time
	if filter.Day != nil {
		start := *filter.Day
		end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
		dayStart, dayEnd = &start, &end
	}
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return nil, 0, errors.New("beginning find transaction error: " + err.Error())
	}
	var total int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM logs WHERE ($1 = '' OR strpos(lower(activity), lower($1)) > 0) AND ($2 = '' OR strpos(lower(category), lower($2)) > 0) AND ($3::timestamptz IS NULL OR (log_date >= $3 AND log_date <= $4));`,
		filter.Activity, filter.Category, dayStart, dayEnd,
	).Scan(&total)
	if err != nil {
		tx.Rollback(ctx)
		return nil, 0, errors.New("counting log entries error: " + err.Error())
	}
	rows, err := tx.Query(ctx, `SELECT id, activity, minutes, log_date, category, tags, notes, created_at, updated_at FROM logs WHERE ($1 = '' OR strpos(lower(activity), lower($1)) > 0) AND ($2 = '' OR strpos(lower(category), lower($2)) > 0) AND ($3::timestamptz IS NULL OR (log_date >= $3 AND log_date <= $4)) ORDER BY created_at DESC LIMIT $5 OFFSET $6;`,
		filter.Activity, filter.Category, dayStart, dayEnd, limit, offset,
	)
	if err != nil {
		tx.Rollback(ctx)
		return nil, 0, errors.New("finding log entries error: " + err.Error())
	}
	logs, err := lr.collectLogs(rows)
	if err != nil {
		tx.Rollback(ctx)
		return nil, 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, 0, errors.New("committing find transaction error: " + err.Error())
	}
	return logs, total, nil
}

func (lr *LogsRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.LogEntry, error) {
	rows, err := lr.conn.Query(ctx, `SELECT id, activity, minutes, log_date, category, tags, notes, created_at, updated_at FROM logs WHERE log_date >= $1 AND log_date <= $2 ORDER BY log_date, created_at;`, from, to)
	if err != nil {
		return nil, errors.New("getting log entries for period error: " + err.Error())
	}
	return lr.collectLogs(rows)
}

func (lr *LogsRepository) FindAll(ctx context.Context) ([]*entity.LogEntry, error) {
	rows, err := lr.conn.Query(ctx, `SELECT id, activity, minutes, log_date, category, tags, notes, created_at, updated_at FROM logs ORDER BY log_date, created_at;`)
	if err != nil {
		return nil, errors.New("getting all log entries error: " + err.Error())
	}
	return lr.collectLogs(rows)
}
