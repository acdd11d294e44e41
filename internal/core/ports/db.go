package ports

import (
	"context"

	"serializable-txn/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Querier issues statements on a single database session.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PooledConn is a connection owned exclusively by its holder until Release.
type PooledConn interface {
	Querier
	// Release hands the connection back to the pool. It never blocks.
	Release()
}

// ConnPool hands out exclusively owned connections.
// Acquire may block while waiting for a free or new connection.
type ConnPool interface {
	Acquire(ctx context.Context) (PooledConn, error)
}

// Executor runs one parameterized statement at a time against the
// connection it is bound to. Failures are *domain.StatementError.
type Executor interface {
	Execute(ctx context.Context, sql string, args ...any) (*domain.QueryResult, error)
}

// ExecutorFunc is a unit of work run against a scoped Executor.
type ExecutorFunc func(ctx context.Context, exec Executor) error

// DBTransactor provides scoped and transactional database access.
//
// Transact may invoke body more than once: when an attempt fails with a
// serialization failure or deadlock the whole body is replayed inside a
// fresh transaction. Bodies must keep externally visible side effects to
// the attempt that commits.
type DBTransactor interface {
	WithExecutor(ctx context.Context, fn ExecutorFunc) error
	Transact(ctx context.Context, body ExecutorFunc) error
}
