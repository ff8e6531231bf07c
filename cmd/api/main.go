// @title Time-log API
// @description API for logging time spent on activities and reading aggregated statistics
// @version 1.0
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/limbo/timelog/internal/api"
	"github.com/limbo/timelog/internal/repository"
	"github.com/limbo/timelog/internal/service"
	"github.com/limbo/timelog/pkg/cleanup"
	"github.com/limbo/timelog/pkg/config"
)

func init() {
	service.InitValidator()
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.GetString("LOG_LEVEL")),
	})))
	defer cleanup.CleanUp()

	loc := cfg.Location()
	repo, err := repository.NewLogsRepoFromConfig(repository.BackendConfig{
		Type: repository.BackendType(cfg.GetStringOr("DATA_BACKEND", string(repository.PostgresBackend))),
		Postgres: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
		},
		MigrationsDir: cfg.GetString("MIGRATIONS_DIR"),
		SQLitePath:    cfg.GetStringOr("SQLITE_DB_PATH", "./timelog.db"),
		Location:      loc,
	}, slog.Default())
	if err != nil {
		cleanup.CleanUp()
		log.Fatal("init storage error: " + err.Error())
	}

	logsService := service.NewLogsService(repo, loc)
	statsService := service.NewStatsService(repo, loc)
	serv := api.New(&api.ServicesList{
		LogsService:      logsService,
		StatsService:     statsService,
		DashboardService: service.NewDashboardService(logsService, statsService, loc),
		Location:         loc,
		RequestTimeout:   cfg.GetDuration("REQUEST_TIMEOUT", 0),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
