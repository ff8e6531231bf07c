package api

import (
	"net/http"

	"github.com/limbo/timelog/internal/service"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/limbo/timelog/pkg/httputil"
)

const (
	defaultActivitiesLimit = 10
	maxActivitiesLimit     = 100
	defaultTrendDays       = 30
	maxTrendDays           = 365
	weekDays               = 7
	monthDays              = 30
)

type WeeklyStatsResponse struct {
	WeeklyStats []entity.DayTotal `json:"weeklyStats"`
}

type ActivityStatsResponse struct {
	ActivityStats []entity.ActivitySummary `json:"activityStats"`
}

type CategoryStatsResponse struct {
	CategoryStats []entity.CategorySummary `json:"categoryStats"`
}

type TrendsResponse struct {
	Trends []entity.DayTotal `json:"trends"`
}

// GetOverview godoc
// @Summary Whole-history statistics
// @Tags stats
// @Produce json
// @Success 200 {object} entity.StatsOverview
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/overview [get]
func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.dashboardService.StatsOverview(ctx)
	if err != nil {
		writeServiceError(w, logger, "fetch overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("overview provided")
}

// GetWeeklyStats godoc
// @Summary Per-day totals in a date range
// @Tags stats
// @Produce json
// @Param startDate query string false "first day, defaults to 6 days before endDate"
// @Param endDate query string false "last day, defaults to today"
// @Success 200 {object} WeeklyStatsResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /stats/weekly [get]
func (s *Server) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	end := service.StartOfDay(s.now(), s.loc)
	if raw := q.Get("endDate"); raw != "" {
		day, err := service.ParseDay(raw, s.loc)
		if err != nil {
			logger.Error("get weekly stats error: invalid endDate")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid endDate", nil)
			return
		}
		end = day
	}
	start := end.AddDate(0, 0, -(weekDays - 1))
	if raw := q.Get("startDate"); raw != "" {
		day, err := service.ParseDay(raw, s.loc)
		if err != nil {
			logger.Error("get weekly stats error: invalid startDate")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid startDate", nil)
			return
		}
		start = day
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	series, err := s.statsService.WeeklySeries(ctx, start, end)
	if err != nil {
		writeServiceError(w, logger, "fetch weekly stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeeklyStatsResponse{WeeklyStats: series})
	logger.Info("weekly stats provided")
}

// GetActivityStats godoc
// @Summary Activities ranked by total minutes
// @Tags stats
// @Produce json
// @Param period query string false "week, month or empty for all time"
// @Param limit query int false "number of activities, default 10"
// @Success 200 {object} ActivityStatsResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/activities [get]
func (s *Server) GetActivityStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit := queryInt(r, "limit", defaultActivitiesLimit, 1, maxActivitiesLimit)
	days := 0
	switch r.URL.Query().Get("period") {
	case "week":
		days = weekDays
	case "month":
		days = monthDays
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	activities, err := s.statsService.TopActivities(ctx, days, limit)
	if err != nil {
		writeServiceError(w, logger, "fetch activity stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivityStatsResponse{ActivityStats: activities})
	logger.Info("activity stats provided")
}

// GetCategoryStats godoc
// @Summary Categories ranked by total minutes
// @Tags stats
// @Produce json
// @Success 200 {object} CategoryStatsResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/categories [get]
func (s *Server) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	categories, err := s.statsService.CategorySummary(ctx, entity.Period{})
	if err != nil {
		writeServiceError(w, logger, "fetch category stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CategoryStatsResponse{CategoryStats: categories})
	logger.Info("category stats provided")
}

// GetTrends godoc
// @Summary Per-day totals for the last days
// @Tags stats
// @Produce json
// @Param days query int false "number of days ending today, 1..365, default 30"
// @Success 200 {object} TrendsResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/trends [get]
func (s *Server) GetTrends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	days := queryInt(r, "days", defaultTrendDays, 1, maxTrendDays)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	trends, err := s.statsService.Trends(ctx, days)
	if err != nil {
		writeServiceError(w, logger, "fetch trends", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TrendsResponse{Trends: trends})
	logger.Info("trends provided")
}
