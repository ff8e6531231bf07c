package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/timelog/internal/error_values"
)

type ErrorResponse struct {
	Code    int                      `json:"code"`
	Message string                   `json:"message"`
	Details string                   `json:"details,omitempty"`
	Errors  []errorvalues.FieldError `json:"errors,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

// WriteValidationErrorResponse answers 400 with one entry per rejected field.
func WriteValidationErrorResponse(w http.ResponseWriter, verr *errorvalues.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	sonic.ConfigFastest.NewEncoder(w).Encode(ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Errors:  verr.Fields,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
