package errorvalues

import (
	"errors"
	"strings"
)

var (
	ErrLogNotFound  = errors.New("log entry doesn't exist")
	ErrInvalidID    = errors.New("invalid log entry id")
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("start date is after end date")
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (se *StorageError) Error() string {
	return "storage error: " + se.Op + ": " + se.Err.Error()
}

func (se *StorageError) Unwrap() error {
	return se.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
