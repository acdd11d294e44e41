package postgres

import "serializable-txn/internal/core/domain"

// Class 40 - Transaction Rollback
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// IsRetryable reports whether err is a transient conflict that a full
// replay of the transaction may resolve.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch domain.SQLState(err) {
	case CodeSerializationFailure, CodeDeadlockDetected:
		return true
	}
	return false
}
