package postgres

import (
	"context"
	"time"

	"serializable-txn/config"
	"serializable-txn/internal/core/ports"
	"serializable-txn/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultMonitorInterval       = 15 * time.Second
	defaultMonitorFaultThreshold = 3
)

// Monitor watches the pool and reports when it can no longer serve
// requests. It never exits the process itself.
type Monitor struct {
	checker   ports.HealthChecker
	interval  time.Duration
	threshold int
	log       zerolog.Logger
}

// NewMonitor creates a Monitor. Zero config values fall back to defaults.
func NewMonitor(checker ports.HealthChecker, cfg config.MonitorConfig, log zerolog.Logger) *Monitor {
	m := &Monitor{
		checker:   checker,
		interval:  cfg.Interval,
		threshold: cfg.FaultThreshold,
		log:       log,
	}
	if m.interval <= 0 {
		m.interval = defaultMonitorInterval
	}
	if m.threshold <= 0 {
		m.threshold = defaultMonitorFaultThreshold
	}
	return m
}

// Run pings the pool every interval until ctx is cancelled, returning nil,
// or until threshold consecutive pings fail, returning a DB_002 AppError
// wrapping the last failure. The caller decides what a fatal pool means for
// the process.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		err := m.ping(ctx)
		if err == nil {
			if failures > 0 {
				m.log.Info().Str("dependency", m.checker.Name()).Msg("connection pool recovered")
			}
			failures = 0
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		failures++
		m.log.Warn().
			Err(err).
			Str("dependency", m.checker.Name()).
			Int("consecutive_failures", failures).
			Int("threshold", m.threshold).
			Msg("connection pool health check failed")

		if failures >= m.threshold {
			m.log.Error().Err(err).Str("dependency", m.checker.Name()).Msg("connection pool is unrecoverable")
			return apperror.ErrPoolFatal(err)
		}
	}
}

func (m *Monitor) ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()
	return m.checker.Ping(pingCtx)
}
