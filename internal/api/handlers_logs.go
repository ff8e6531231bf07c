package api

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/timelog/internal/service"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/limbo/timelog/pkg/httputil"
)

const (
	defaultLogsLimit = 20
	maxLogsLimit     = 100
)

type CreateLogRequest struct {
	Activity string   `json:"activity"`
	Minutes  int      `json:"minutes"`
	Date     string   `json:"date,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateLogRequest struct {
	Activity *string   `json:"activity,omitempty"`
	Minutes  *int      `json:"minutes,omitempty"`
	Date     *string   `json:"date,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

type LogResponse struct {
	Message string           `json:"message"`
	Log     *entity.LogEntry `json:"log"`
}

type DeleteLogResponse struct {
	Message    string           `json:"message"`
	DeletedLog *entity.LogEntry `json:"deletedLog"`
}

// GetLogs godoc
// @Summary List log entries
// @Tags logs
// @Produce json
// @Param page query int false "page, starting at 1"
// @Param limit query int false "page size, 1..100"
// @Param activity query string false "activity substring"
// @Param category query string false "category substring"
// @Param date query string false "day, YYYY-MM-DD"
// @Success 200 {object} entity.LogPage
// @Failure 400 {object} httputil.ErrorResponse
// @Router /logs [get]
func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit := queryInt(r, "limit", defaultLogsLimit, 1, maxLogsLimit)
	page := queryInt(r, "page", 1, 1, int(^uint(0)>>1)/maxLogsLimit)
	q := r.URL.Query()
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.logsService.ListLogs(ctx, service.LogsQuery{
		Activity: q.Get("activity"),
		Category: q.Get("category"),
		Date:     q.Get("date"),
	}, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "fetch logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("logs provided")
}

// GetLogsByDate godoc
// @Summary Entries and aggregates of one day
// @Tags logs
// @Produce json
// @Param date path string true "day, YYYY-MM-DD"
// @Success 200 {object} entity.DayLog
// @Failure 400 {object} httputil.ErrorResponse
// @Router /logs/date/{date} [get]
func (s *Server) GetLogsByDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := service.ParseDay(pathParam(r, "date"), s.loc)
	if err != nil {
		logger.Error("get logs by date error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	result, err := s.dashboardService.DayLog(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "fetch logs for date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("day logs provided")
}

// CreateLog godoc
// @Summary Create log entry
// @Tags logs
// @Accept json
// @Produce json
// @Param entry body CreateLogRequest true "new entry"
// @Success 201 {object} LogResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /logs [post]
func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateLogRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	created, err := s.logsService.CreateLog(ctx, &service.CreateLogRequest{
		Activity: req.Activity,
		Minutes:  req.Minutes,
		Date:     req.Date,
		Notes:    req.Notes,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		writeServiceError(w, logger, "create log entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, LogResponse{
		Message: "Log entry created successfully",
		Log:     created,
	})
	logger.Info("log entry created", "id", created.ID.String())
}

// UpdateLog godoc
// @Summary Update log entry
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "entry id"
// @Param entry body UpdateLogRequest true "fields to replace"
// @Success 200 {object} LogResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /logs/{id} [put]
func (s *Server) UpdateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(pathParam(r, "id"))
	if err != nil {
		logger.Error("update log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log entry id in path value", nil)
		return
	}
	var req UpdateLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	updated, err := s.logsService.UpdateLog(ctx, id, &service.UpdateLogRequest{
		Activity: req.Activity,
		Minutes:  req.Minutes,
		Date:     req.Date,
		Notes:    req.Notes,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		writeServiceError(w, logger, "update log entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LogResponse{
		Message: "Log entry updated successfully",
		Log:     updated,
	})
	logger.Info("log entry updated", "id", id.String())
}

// DeleteLog godoc
// @Summary Delete log entry
// @Tags logs
// @Produce json
// @Param id path string true "entry id"
// @Success 200 {object} DeleteLogResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /logs/{id} [delete]
func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(pathParam(r, "id"))
	if err != nil {
		logger.Error("delete log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log entry id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	deleted, err := s.logsService.DeleteLog(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete log entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DeleteLogResponse{
		Message:    "Log entry deleted successfully",
		DeletedLog: deleted,
	})
	logger.Info("log entry deleted", "id", id.String())
}
