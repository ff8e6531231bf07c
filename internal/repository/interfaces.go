package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/timelog/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_logs_repository.go -package=mocks github.com/limbo/timelog/internal/repository LogsRepositoryI

type LogsRepositoryI interface {
	// Persists entry. ID, Activity, Minutes and normalized Date are necessary; CreatedAt/UpdatedAt are filled in
	Create(ctx context.Context, entry *entity.LogEntry) error
	// Searches entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error)
	// Replaces mutable fields of entry by ID, refreshes UpdatedAt
	Update(ctx context.Context, entry *entity.LogEntry) error
	// Removes entry, returning what was removed
	Delete(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error)
	// Lists a page of entries matching filter, newest first, with the total match count
	Find(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error)
	// Lists entries with from <= date <= to, ordered by date then creation
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.LogEntry, error)
	// Lists every entry, ordered by date then creation
	FindAll(ctx context.Context) ([]*entity.LogEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
