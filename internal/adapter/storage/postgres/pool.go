package postgres

import (
	"context"
	"fmt"

	"serializable-txn/internal/core/ports"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnPool implements ports.ConnPool on top of pgxpool.
type ConnPool struct {
	pool *pgxpool.Pool
}

// NewConnPool wraps an established pgx pool.
func NewConnPool(pool *pgxpool.Pool) *ConnPool {
	return &ConnPool{pool: pool}
}

// Acquire checks out one connection. The caller owns it until Release.
func (p *ConnPool) Acquire(ctx context.Context) (ports.PooledConn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	return conn, nil
}
