package postgres

import (
	"context"

	"serializable-txn/internal/core/ports"
)

// Scope hands a caller one exclusively owned connection for the duration of
// a function call.
type Scope struct {
	pool ports.ConnPool
}

// NewScope creates a Scope drawing connections from pool.
func NewScope(pool ports.ConnPool) *Scope {
	return &Scope{pool: pool}
}

// Run calls fn with an Executor bound to a freshly acquired connection.
func (s *Scope) Run(ctx context.Context, fn ports.ExecutorFunc) error {
	_, err := WithExecutor(ctx, s, func(ctx context.Context, exec ports.Executor) (struct{}, error) {
		return struct{}{}, fn(ctx, exec)
	})
	return err
}

// WithExecutor acquires a connection, runs fn against it and releases the
// connection exactly once, however fn exits (including panics). fn's result
// and error are returned unchanged.
func WithExecutor[R any](ctx context.Context, s *Scope, fn func(context.Context, ports.Executor) (R, error)) (R, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		var zero R
		return zero, err
	}

	exec := newConnExecutor(conn)
	defer func() {
		exec.release()
		conn.Release()
	}()

	return fn(ctx, exec)
}
