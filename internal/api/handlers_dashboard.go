package api

import (
	"net/http"

	"github.com/limbo/timelog/pkg/httputil"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetDashboard godoc
// @Summary Today, yesterday and this week at a glance
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.Dashboard
// @Failure 500 {object} httputil.ErrorResponse
// @Router /dashboard [get]
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.dashboardService.Dashboard(ctx)
	if err != nil {
		writeServiceError(w, logger, "fetch dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("dashboard provided")
}

// GetInsights godoc
// @Summary Long-run insights
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.Insights
// @Failure 500 {object} httputil.ErrorResponse
// @Router /dashboard/insights [get]
func (s *Server) GetInsights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.dashboardService.Insights(ctx)
	if err != nil {
		writeServiceError(w, logger, "fetch insights", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("insights provided")
}
