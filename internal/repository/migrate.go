package repository

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrationsFS embed.FS

// MigratePostgres applies the goose migrations found in dir.
func MigratePostgres(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(conn, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}

// migrateSQLite applies the embedded migrations on a dedicated connection.
func migrateSQLite(path string) error {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.New("opening migration database error: " + err.Error())
	}
	defer conn.Close()
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return errors.New("creating sqlite migration driver error: " + err.Error())
	}
	src, err := iofs.New(sqliteMigrationsFS, "migrations/sqlite")
	if err != nil {
		return errors.New("creating migration source error: " + err.Error())
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return errors.New("creating migrate instance error: " + err.Error())
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
