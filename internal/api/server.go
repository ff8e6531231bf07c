package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/limbo/timelog/docs"
	"github.com/limbo/timelog/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx               *chi.Mux
	logsService      service.LogsServiceI
	statsService     service.StatsServiceI
	dashboardService service.DashboardServiceI
	loc              *time.Location
	timeout          time.Duration
	now              func() time.Time
}

type ServicesList struct {
	LogsService      service.LogsServiceI
	StatsService     service.StatsServiceI
	DashboardService service.DashboardServiceI
	// Zone used to interpret dates in paths and queries
	Location *time.Location
	// Upper bound for one request's work, 10s when zero
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		logsService:      servicesOptions.LogsService,
		statsService:     servicesOptions.StatsService,
		dashboardService: servicesOptions.DashboardService,
		loc:              servicesOptions.Location,
		timeout:          servicesOptions.RequestTimeout,
		now:              time.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.timeout <= 0 {
		s.timeout = defaultRequestTimeout
	}
	s.MountEndpoints()
	return s
}

// WithClock replaces the source of "today" for default date ranges.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api", func(r chi.Router) {
		r.Route("/logs", func(r chi.Router) {
			r.Get("/", s.GetLogs)
			r.Post("/", s.CreateLog)
			r.Get("/date/{date}", s.GetLogsByDate)
			r.Put("/{id}", s.UpdateLog)
			r.Delete("/{id}", s.DeleteLog)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", s.GetDashboard)
			r.Get("/insights", s.GetInsights)
		})
		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", s.GetOverview)
			r.Get("/weekly", s.GetWeeklyStats)
			r.Get("/activities", s.GetActivityStats)
			r.Get("/categories", s.GetCategoryStats)
			r.Get("/trends", s.GetTrends)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("server error: " + err.Error())
	case <-ctx.Done():
	}
	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}
