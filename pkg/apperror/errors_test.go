package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"serializable-txn/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VAL_001", "Invalid counter name", http.StatusBadRequest),
			expected: "[VAL_001] Invalid counter name",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("DB_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[DB_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VAL_001", "test", http.StatusBadRequest).Unwrap())
}

func TestErrRetriesExhausted(t *testing.T) {
	err := ErrRetriesExhausted(10)

	assert.Equal(t, "TX_001", err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Contains(t, err.Message, "10 attempts")
	assert.ErrorIs(t, err, domain.ErrRetriesExhausted)

	var pgErr *pgconn.PgError
	assert.False(t, errors.As(err, &pgErr), "exhaustion must not look like a database error")
}

func TestCodes(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DatabaseError", ErrDatabaseError(cause), "DB_001", 500},
		{"PoolFatal", ErrPoolFatal(cause), "DB_002", 503},
		{"Validation", Validation("bad"), "VAL_001", 400},
		{"NotFound", ErrNotFound("counter"), "NOT_001", 404},
		{"Internal", InternalError(cause), "SYS_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}

	assert.Equal(t, "counter not found", ErrNotFound("counter").Message)
}
