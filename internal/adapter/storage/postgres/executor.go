package postgres

import (
	"context"
	"sync"

	"serializable-txn/internal/core/domain"
	"serializable-txn/internal/core/ports"
)

// connExecutor implements ports.Executor for a single acquired connection.
// Statements are serialized; after release every call fails.
type connExecutor struct {
	mu       sync.Mutex
	conn     ports.Querier
	released bool
}

func newConnExecutor(conn ports.Querier) *connExecutor {
	return &connExecutor{conn: conn}
}

// Execute runs sql with positional args and buffers the full result.
func (e *connExecutor) Execute(ctx context.Context, sql string, args ...any) (*domain.QueryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.released {
		return nil, domain.ErrExecutorReleased
	}

	rows, err := e.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, domain.NewStatementError(sql, args, err)
	}
	defer rows.Close()

	result := &domain.QueryResult{}
	for _, fd := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, domain.NewStatementError(sql, args, err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStatementError(sql, args, err)
	}

	tag := rows.CommandTag()
	result.CommandTag = tag.String()
	result.RowsAffected = tag.RowsAffected()

	return result, nil
}

func (e *connExecutor) release() {
	e.mu.Lock()
	e.released = true
	e.mu.Unlock()
}
