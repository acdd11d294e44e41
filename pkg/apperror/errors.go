package apperror

import (
	"fmt"
	"net/http"

	"serializable-txn/internal/core/domain"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Transactions (TX) ----

// ErrRetriesExhausted reports that every attempt ended in a retryable
// conflict. It wraps domain.ErrRetriesExhausted and never the last
// database error, so callers can tell it apart from a single failure.
func ErrRetriesExhausted(attempts int) *AppError {
	return Wrap("TX_001",
		fmt.Sprintf("Transaction gave up after %d attempts", attempts),
		http.StatusServiceUnavailable,
		domain.ErrRetriesExhausted,
	)
}

// ---- Database (DB) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("DB_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrPoolFatal(err error) *AppError {
	return Wrap("DB_002", "Connection pool is unrecoverable", http.StatusServiceUnavailable, err)
}

// ---- Requests (VAL / NOT) ----

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("NOT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
