package ports

import (
	"context"

	"serializable-txn/internal/core/domain"
)

// CounterService manages named counters stored in PostgreSQL.
type CounterService interface {
	EnsureSchema(ctx context.Context) error
	Increment(ctx context.Context, name string, delta int64) (*domain.Counter, error)
	Get(ctx context.Context, name string) (*domain.Counter, error)
}
