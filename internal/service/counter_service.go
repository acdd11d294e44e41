package service

import (
	"context"
	"errors"
	"fmt"

	"serializable-txn/internal/core/domain"
	"serializable-txn/internal/core/ports"
	"serializable-txn/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	createCountersSQL = `CREATE TABLE IF NOT EXISTS counters (
		name  TEXT PRIMARY KEY,
		value BIGINT NOT NULL DEFAULT 0
	)`
	selectCounterSQL = `SELECT value FROM counters WHERE name = $1`
	upsertCounterSQL = `INSERT INTO counters (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
		RETURNING value`
)

type counterService struct {
	db  ports.DBTransactor
	log zerolog.Logger
}

// NewCounterService creates a counter service on top of the transactor.
func NewCounterService(db ports.DBTransactor, log zerolog.Logger) ports.CounterService {
	return &counterService{db: db, log: log}
}

func (s *counterService) EnsureSchema(ctx context.Context) error {
	err := s.db.WithExecutor(ctx, func(ctx context.Context, exec ports.Executor) error {
		_, err := exec.Execute(ctx, createCountersSQL)
		return err
	})
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// Increment reads the current value and writes value+delta in one
// serializable transaction. Concurrent increments of the same counter
// conflict and are replayed by the transactor.
func (s *counterService) Increment(ctx context.Context, name string, delta int64) (*domain.Counter, error) {
	if !domain.ValidCounterName(name) {
		return nil, apperror.Validation("Invalid counter name")
	}
	if delta == 0 {
		return nil, apperror.Validation("Delta must be non-zero")
	}

	var counter *domain.Counter
	err := s.db.Transact(ctx, func(ctx context.Context, exec ports.Executor) error {
		current, err := exec.Execute(ctx, selectCounterSQL, name)
		if err != nil {
			return err
		}

		var value int64
		if current.Len() > 0 {
			if value, err = toInt64(current.Value(0, 0)); err != nil {
				return err
			}
		}

		written, err := exec.Execute(ctx, upsertCounterSQL, name, value+delta)
		if err != nil {
			return err
		}
		newValue, err := toInt64(written.Value(0, 0))
		if err != nil {
			return err
		}

		counter = &domain.Counter{Name: name, Value: newValue}
		return nil
	})
	if err != nil {
		return nil, s.mapError(err, name)
	}

	return counter, nil
}

func (s *counterService) Get(ctx context.Context, name string) (*domain.Counter, error) {
	if !domain.ValidCounterName(name) {
		return nil, apperror.Validation("Invalid counter name")
	}

	var counter *domain.Counter
	err := s.db.WithExecutor(ctx, func(ctx context.Context, exec ports.Executor) error {
		res, err := exec.Execute(ctx, selectCounterSQL, name)
		if err != nil {
			return err
		}
		if res.Len() == 0 {
			return nil
		}
		value, err := toInt64(res.Value(0, 0))
		if err != nil {
			return err
		}
		counter = &domain.Counter{Name: name, Value: value}
		return nil
	})
	if err != nil {
		return nil, s.mapError(err, name)
	}
	if counter == nil {
		return nil, apperror.ErrNotFound("counter")
	}

	return counter, nil
}

// mapError keeps AppErrors (retry exhaustion) and wraps everything else.
func (s *counterService) mapError(err error, name string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.log.Error().
		Err(err).
		Str("counter", name).
		Str("sqlstate", domain.SQLState(err)).
		Msg("counter query failed")
	return apperror.ErrDatabaseError(err)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected counter value type %T", v)
	}
}
