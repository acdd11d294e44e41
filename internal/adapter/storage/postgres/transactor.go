package postgres

import (
	"context"
	"fmt"
	"sync"

	"serializable-txn/internal/core/domain"
	"serializable-txn/internal/core/ports"
	"serializable-txn/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMaxAttempts bounds how many times a conflicting body is replayed.
const DefaultMaxAttempts = 10

// Transactor implements ports.DBTransactor: serializable transactions with
// automatic replay on serialization failures and deadlocks.
type Transactor struct {
	scope       *Scope
	log         zerolog.Logger
	maxAttempts int
}

// TransactorOption configures a Transactor.
type TransactorOption func(*Transactor)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) TransactorOption {
	return func(t *Transactor) {
		if n >= 1 {
			t.maxAttempts = n
		}
	}
}

// NewTransactor creates a Transactor running its transactions through scope.
func NewTransactor(scope *Scope, log zerolog.Logger, opts ...TransactorOption) *Transactor {
	t := &Transactor{
		scope:       scope,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MaxAttempts returns the configured attempt bound.
func (t *Transactor) MaxAttempts() int {
	return t.maxAttempts
}

// WithExecutor runs fn on a scoped connection without a transaction.
func (t *Transactor) WithExecutor(ctx context.Context, fn ports.ExecutorFunc) error {
	return t.scope.Run(ctx, fn)
}

// Transact runs body inside a serializable transaction, replaying it on
// retryable conflicts.
func (t *Transactor) Transact(ctx context.Context, body ports.ExecutorFunc) error {
	_, err := Transact(ctx, t, func(ctx context.Context, exec ports.Executor) (struct{}, error) {
		return struct{}{}, body(ctx, exec)
	})
	return err
}

// Transact runs body between begin and commit on one scoped connection.
//
// If an attempt fails with a serialization failure or deadlock, it is rolled
// back and body is invoked again in a new transaction, up to the
// Transactor's attempt bound. Any other failure is rolled back and returned
// as is. When every attempt conflicts the result is a TX_001 AppError
// wrapping domain.ErrRetriesExhausted.
func Transact[R any](ctx context.Context, t *Transactor, body func(context.Context, ports.Executor) (R, error)) (R, error) {
	return WithExecutor(ctx, t.scope, func(ctx context.Context, exec ports.Executor) (R, error) {
		return transactWithExecutor(ctx, t, exec, body)
	})
}

type outcomeKind int

const (
	outcomeCommitted outcomeKind = iota
	outcomeRetryable
	outcomeFatal
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeCommitted:
		return "committed"
	case outcomeRetryable:
		return "rolled_back_retry"
	default:
		return "rolled_back_fatal"
	}
}

// attemptOutcome is the result of one begin/body/commit-or-rollback cycle.
type attemptOutcome struct {
	kind outcomeKind
	err  error
}

func classify(err error) attemptOutcome {
	if IsRetryable(err) {
		return attemptOutcome{kind: outcomeRetryable, err: err}
	}
	return attemptOutcome{kind: outcomeFatal, err: err}
}

func transactWithExecutor[R any](ctx context.Context, t *Transactor, exec ports.Executor, body func(context.Context, ports.Executor) (R, error)) (R, error) {
	var zero R
	log := t.log.With().Str("tx_id", uuid.NewString()).Logger()

	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		result, outcome := runAttempt(ctx, log, exec, body)

		switch outcome.kind {
		case outcomeCommitted:
			if attempt > 1 {
				log.Debug().Int("attempt", attempt).Msg("transaction committed after retry")
			}
			return result, nil
		case outcomeRetryable:
			if attempt == t.maxAttempts {
				log.Error().
					Err(outcome.err).
					Int("attempts", t.maxAttempts).
					Str("sqlstate", domain.SQLState(outcome.err)).
					Msg("transaction retry budget exhausted")
				return zero, apperror.ErrRetriesExhausted(t.maxAttempts)
			}
			log.Warn().
				Err(outcome.err).
				Int("attempt", attempt).
				Stringer("outcome", outcome.kind).
				Int("max_attempts", t.maxAttempts).
				Str("sqlstate", domain.SQLState(outcome.err)).
				Msg("retrying transaction after conflict")
		default:
			return zero, outcome.err
		}
	}

	return zero, apperror.ErrRetriesExhausted(t.maxAttempts)
}

func runAttempt[R any](ctx context.Context, log zerolog.Logger, exec ports.Executor, body func(context.Context, ports.Executor) (R, error)) (R, attemptOutcome) {
	var zero R

	if _, err := exec.Execute(ctx, "begin"); err != nil {
		return zero, classify(err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, log, exec)
			panic(p)
		}
	}()

	tracked := &attemptExecutor{Executor: exec}
	result, err := body(ctx, tracked)
	if err == nil {
		var res *domain.QueryResult
		if res, err = exec.Execute(ctx, "commit"); err == nil {
			if res.CommandTag != commitRolledBackTag {
				return result, attemptOutcome{kind: outcomeCommitted}
			}
			// The server already ended the transaction, nothing to roll back.
			return zero, classify(commitRolledBackError(tracked.firstFailure()))
		}
	}

	rollback(ctx, log, exec)
	return zero, classify(err)
}

// commitRolledBackTag is the command tag PostgreSQL returns for COMMIT on an
// aborted transaction.
const commitRolledBackTag = "ROLLBACK"

func commitRolledBackError(cause error) error {
	if cause == nil {
		return domain.ErrCommitRolledBack
	}
	return fmt.Errorf("%w: %w", domain.ErrCommitRolledBack, cause)
}

// attemptExecutor remembers the first failed statement of an attempt, so a
// body that swallows an error still has the attempt classified by it.
type attemptExecutor struct {
	ports.Executor

	mu     sync.Mutex
	failed error
}

func (a *attemptExecutor) Execute(ctx context.Context, sql string, args ...any) (*domain.QueryResult, error) {
	res, err := a.Executor.Execute(ctx, sql, args...)
	if err != nil {
		a.mu.Lock()
		if a.failed == nil {
			a.failed = err
		}
		a.mu.Unlock()
	}
	return res, err
}

func (a *attemptExecutor) firstFailure() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failed
}

// rollback is best effort. It runs even when ctx is cancelled, and its own
// failure never replaces the error that caused it.
func rollback(ctx context.Context, log zerolog.Logger, exec ports.Executor) {
	if _, err := exec.Execute(context.WithoutCancel(ctx), "rollback"); err != nil {
		log.Error().Err(err).Msg("rollback failed")
	}
}
