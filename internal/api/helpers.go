package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/timelog/internal/error_values"
	"github.com/limbo/timelog/pkg/httputil"
)

// pathParam reads a path value set either by the standard mux or by chi.
func pathParam(r *http.Request, key string) string {
	if v := r.PathValue(key); v != "" {
		return v
	}
	return chi.URLParam(r, key)
}

// queryInt parses key as an int inside [lo, hi], falling back to def.
func queryInt(r *http.Request, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < lo || v > hi {
		return def
	}
	return v
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.timeout)
}

// writeServiceError maps service failures onto status codes. Storage details
// are logged and never sent to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	var verr *errorvalues.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn(action+" error: validation failed", slog.String("error", verr.Error()))
		httputil.WriteValidationErrorResponse(w, verr)
	case errors.Is(err, errorvalues.ErrLogNotFound):
		logger.Warn(action + " error: log entry doesn't exist")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "log entry not found", nil)
	case errors.Is(err, errorvalues.ErrInvalidRange), errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Warn(action+" error: bad date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to "+action, nil)
	}
}
