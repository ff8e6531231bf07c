package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/pkg/cleanup"
	"github.com/limbo/timelog/pkg/entity"

	_ "modernc.org/sqlite"
)

// SQLiteLogsRepository keeps log entries in a single SQLite file. Days are
// stored as unix seconds of local midnight, timestamps as unix nanoseconds.
type SQLiteLogsRepository struct {
	db  *sql.DB
	loc *time.Location
	now func() time.Time
}

var _ LogsRepositoryI = (*SQLiteLogsRepository)(nil)

func NewSQLiteLogsRepo(path string, loc *time.Location) (*SQLiteLogsRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.New("creating db directory error: " + err.Error())
	}
	if err := migrateSQLite(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening sqlite database error: " + err.Error())
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("pinging sqlite database error: " + err.Error())
	}
	if _, err = db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.New("setting WAL mode error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    db.Close,
	})
	if loc == nil {
		loc = time.Local
	}
	return &SQLiteLogsRepository{
		db:  db,
		loc: loc,
		now: time.Now,
	}, nil
}

// WithClock replaces the source of CreatedAt/UpdatedAt timestamps.
func (sr *SQLiteLogsRepository) WithClock(now func() time.Time) *SQLiteLogsRepository {
	sr.now = now
	return sr
}

func (sr *SQLiteLogsRepository) Close() error {
	return sr.db.Close()
}

const sqliteColumns = `id, activity, minutes, log_date, category, tags, notes, created_at, updated_at`

func (sr *SQLiteLogsRepository) scanLog(row scanner) (*entity.LogEntry, error) {
	var (
		e                    entity.LogEntry
		id, tags             string
		day, created, update int64
	)
	if err := row.Scan(&id, &e.Activity, &e.Minutes, &day, &e.Category, &tags, &e.Notes, &created, &update); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("corrupted log entry id: " + err.Error())
	}
	e.ID = parsed
	if err = sonic.UnmarshalString(tags, &e.Tags); err != nil {
		return nil, errors.New("corrupted log entry tags: " + err.Error())
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	e.Date = time.Unix(day, 0).In(sr.loc)
	e.CreatedAt = time.Unix(0, created).In(sr.loc)
	e.UpdatedAt = time.Unix(0, update).In(sr.loc)
	return &e, nil
}

func (sr *SQLiteLogsRepository) collect(rows *sql.Rows) ([]*entity.LogEntry, error) {
	defer rows.Close()
	result := make([]*entity.LogEntry, 0)
	for rows.Next() {
		e, err := sr.scanLog(rows)
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

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	return sonic.MarshalString(tags)
}

func (sr *SQLiteLogsRepository) Create(ctx context.Context, entry *entity.LogEntry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return errors.New("encoding tags error: " + err.Error())
	}
	now := sr.now()
	_, err = sr.db.ExecContext(ctx, `INSERT INTO logs (`+sqliteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		entry.ID.String(), entry.Activity, entry.Minutes, entry.Date.Unix(), entry.Category, tags, entry.Notes, now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return errors.New("creating log entry db error: " + err.Error())
	}
	entry.CreatedAt = now.In(sr.loc)
	entry.UpdatedAt = now.In(sr.loc)
	return nil
}

func (sr *SQLiteLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM logs WHERE id = ?;`, id.String())
	e, err := sr.scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting log entry by id error: " + err.Error())
	}
	return e, nil
}

func (sr *SQLiteLogsRepository) Update(ctx context.Context, entry *entity.LogEntry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return errors.New("encoding tags error: " + err.Error())
	}
	now := sr.now()
	res, err := sr.db.ExecContext(ctx, `UPDATE logs SET activity = ?, minutes = ?, log_date = ?, category = ?, tags = ?, notes = ?, updated_at = ? WHERE id = ?;`,
		entry.Activity, entry.Minutes, entry.Date.Unix(), entry.Category, tags, entry.Notes, now.UnixNano(), entry.ID.String(),
	)
	if err != nil {
		return errors.New("error updating log entry: " + err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.New("error updating log entry: " + err.Error())
	}
	if affected == 0 {
		return errorvalues.ErrLogNotFound
	}
	entry.UpdatedAt = now.In(sr.loc)
	return nil
}

func (sr *SQLiteLogsRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	row := sr.db.QueryRowContext(ctx, `DELETE FROM logs WHERE id = ? RETURNING `+sqliteColumns+`;`, id.String())
	e, err := sr.scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("error deleting log entry: " + err.Error())
	}
	return e, nil
}

const sqliteFilter = `(?1 = '' OR instr(lower(activity), lower(?1)) > 0) AND (?2 = '' OR instr(lower(category), lower(?2)) > 0) AND (?3 IS NULL OR (log_date >= ?3 AND log_date <= ?4))`

func (sr *SQLiteLogsRepository) Find(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error) {
	var dayStart, dayEnd any
	if filter.Day != nil {
		dayStart = filter.Day.Unix()
		dayEnd = filter.Day.AddDate(0, 0, 1).Unix() - 1
	}
	tx, err := sr.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, 0, errors.New("beginning find transaction error: " + err.Error())
	}
	defer tx.Rollback()
	var total int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs WHERE `+sqliteFilter+`;`,
		filter.Activity, filter.Category, dayStart, dayEnd,
	).Scan(&total)
	if err != nil {
		return nil, 0, errors.New("counting log entries error: " + err.Error())
	}
	rows, err := tx.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM logs WHERE `+sqliteFilter+` ORDER BY created_at DESC LIMIT ?5 OFFSET ?6;`,
		filter.Activity, filter.Category, dayStart, dayEnd, limit, offset,
	)
	if err != nil {
		return nil, 0, errors.New("finding log entries error: " + err.Error())
	}
	logs, err := sr.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	if err = tx.Commit(); err != nil {
		return nil, 0, errors.New("committing find transaction error: " + err.Error())
	}
	return logs, total, nil
}

func (sr *SQLiteLogsRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.LogEntry, error) {
	rows, err := sr.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM logs WHERE log_date >= ? AND log_date <= ? ORDER BY log_date, created_at;`, from.Unix(), to.Unix())
	if err != nil {
		return nil, errors.New("getting log entries for period error: " + err.Error())
	}
	return sr.collect(rows)
}

func (sr *SQLiteLogsRepository) FindAll(ctx context.Context) ([]*entity.LogEntry, error) {
	rows, err := sr.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM logs ORDER BY log_date, created_at;`)
	if err != nil {
		return nil, errors.New("getting all log entries error: " + err.Error())
	}
	return sr.collect(rows)
}
