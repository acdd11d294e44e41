package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"serializable-txn/internal/core/domain"
	"serializable-txn/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"serialization failure", &pgconn.PgError{Code: CodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: CodeDeadlockDetected}, true},
		{"wrapped in statement error", domain.NewStatementError("commit", nil, &pgconn.PgError{Code: "40001"}), true},
		{"wrapped by caller", fmt.Errorf("increment: %w", domain.NewStatementError("x", nil, &pgconn.PgError{Code: "40P01"})), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, false},
		{"other class 40", &pgconn.PgError{Code: "40002"}, false},
		{"plain error", errors.New("40001"), false},
		{"context cancelled", context.Canceled, false},
		{"exhaustion", apperror.ErrRetriesExhausted(10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
