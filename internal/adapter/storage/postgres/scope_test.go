package postgres

import (
	"context"
	"errors"
	"testing"

	"serializable-txn/internal/core/domain"
	"serializable-txn/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExecutor_ReturnsResultAndReleases(t *testing.T) {
	mock, pool := newMockPool(t)
	scope := NewScope(pool)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(int32(1)))

	got, err := WithExecutor(context.Background(), scope, func(ctx context.Context, exec ports.Executor) (int32, error) {
		res, err := exec.Execute(ctx, "SELECT 1")
		if err != nil {
			return 0, err
		}
		return res.Value(0, 0).(int32), nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), got)
	assert.Equal(t, 1, pool.acquired)
	assert.Equal(t, 1, pool.released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithExecutor_ReleasesOnError(t *testing.T) {
	_, pool := newMockPool(t)
	scope := NewScope(pool)
	boom := errors.New("boom")

	_, err := WithExecutor(context.Background(), scope, func(context.Context, ports.Executor) (string, error) {
		return "", boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, pool.acquired)
	assert.Equal(t, 1, pool.released)
}

func TestWithExecutor_ReleasesOnPanic(t *testing.T) {
	_, pool := newMockPool(t)
	scope := NewScope(pool)

	assert.PanicsWithValue(t, "body exploded", func() {
		_ = scope.Run(context.Background(), func(context.Context, ports.Executor) error {
			panic("body exploded")
		})
	})

	assert.Equal(t, 1, pool.acquired)
	assert.Equal(t, 1, pool.released)
}

func TestWithExecutor_AcquireFailure(t *testing.T) {
	_, pool := newMockPool(t)
	pool.acquireErr = errors.New("acquiring connection: pool closed")
	scope := NewScope(pool)

	called := false
	err := scope.Run(context.Background(), func(context.Context, ports.Executor) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, pool.acquireErr)
	assert.False(t, called)
	assert.Equal(t, 0, pool.released)
}

func TestWithExecutor_ExecutorInvalidAfterScope(t *testing.T) {
	mock, pool := newMockPool(t)
	scope := NewScope(pool)

	var leaked ports.Executor
	require.NoError(t, scope.Run(context.Background(), func(_ context.Context, exec ports.Executor) error {
		leaked = exec
		return nil
	}))

	_, err := leaked.Execute(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, domain.ErrExecutorReleased)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithExecutor_EveryCallPairsAcquireAndRelease(t *testing.T) {
	_, pool := newMockPool(t)
	scope := NewScope(pool)
	boom := errors.New("boom")

	for i := 0; i < 5; i++ {
		_ = scope.Run(context.Background(), func(context.Context, ports.Executor) error {
			if i%2 == 0 {
				return boom
			}
			return nil
		})
	}

	assert.Equal(t, 5, pool.acquired)
	assert.Equal(t, pool.acquired, pool.released)
}
