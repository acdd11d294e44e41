package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRetriesExhausted is the cause of every "gave up retrying" failure.
	ErrRetriesExhausted = errors.New("tried to execute transaction too many times, giving up")

	// ErrExecutorReleased is returned by an executor used after its scope ended.
	ErrExecutorReleased = errors.New("executor used after its connection was released")

	// ErrCommitRolledBack is returned when the server answers COMMIT with
	// ROLLBACK because the transaction had already failed.
	ErrCommitRolledBack = errors.New("commit rolled back: transaction was aborted")
)

// StatementError wraps a failed statement with the text and arguments that
// produced it. Code is the SQLSTATE of the underlying error, copied as-is.
type StatementError struct {
	SQL  string
	Args []any
	Code string
	Err  error
}

// NewStatementError wraps err, capturing its SQLSTATE.
func NewStatementError(sql string, args []any, err error) *StatementError {
	return &StatementError{
		SQL:  sql,
		Args: args,
		Code: SQLState(err),
		Err:  err,
	}
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("executing SQL: %s, arguments: %v: %v", e.SQL, e.Args, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// SQLState returns the preserved classification code.
func (e *StatementError) SQLState() string {
	return e.Code
}

// SQLState extracts the SQLSTATE code from the first error in err's chain
// that exposes one. *pgconn.PgError and *StatementError both do.
func SQLState(err error) string {
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState()
	}
	return ""
}
