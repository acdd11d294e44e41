package postgres

import (
	"context"
	"testing"

	"serializable-txn/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// fakePool hands out the same mocked connection and counts checkouts.
type fakePool struct {
	conn       pgxmock.PgxConnIface
	acquireErr error
	acquired   int
	released   int
}

func (p *fakePool) Acquire(_ context.Context) (ports.PooledConn, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return &fakeConn{Querier: p.conn, pool: p}, nil
}

type fakeConn struct {
	ports.Querier
	pool *fakePool
}

func (c *fakeConn) Release() {
	c.pool.released++
}

func newMockPool(t *testing.T) (pgxmock.PgxConnIface, *fakePool) {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock, &fakePool{conn: mock}
}

func emptyRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{})
}

func expectBegin(mock pgxmock.PgxConnIface) {
	mock.ExpectQuery("begin").WillReturnRows(emptyRows())
}

func expectCommit(mock pgxmock.PgxConnIface) {
	mock.ExpectQuery("commit").WillReturnRows(emptyRows())
}

func expectRollback(mock pgxmock.PgxConnIface) {
	mock.ExpectQuery("rollback").WillReturnRows(emptyRows())
}
