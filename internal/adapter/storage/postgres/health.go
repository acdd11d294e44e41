package postgres

import (
	"context"

	"serializable-txn/internal/core/ports"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	scope *Scope
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(scope *Scope) *HealthCheck {
	return &HealthCheck{scope: scope}
}

// Ping checks out a connection and runs a trivial query on it.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.scope.Run(ctx, func(ctx context.Context, exec ports.Executor) error {
		_, err := exec.Execute(ctx, "SELECT 1")
		return err
	})
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
