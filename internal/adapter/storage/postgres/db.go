package postgres

import (
	"context"
	"crypto/tls"
	"fmt"

	"serializable-txn/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const serializableSessionSQL = "SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL SERIALIZABLE"

// sessionExecer is the part of *pgx.Conn used during session setup.
type sessionExecer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// configureSession runs once per physical connection, before the pool
// hands it out.
func configureSession(ctx context.Context, conn sessionExecer) error {
	if _, err := conn.Exec(ctx, serializableSessionSQL); err != nil {
		return fmt.Errorf("setting serializable isolation: %w", err)
	}
	return nil
}

// BuildPoolConfig turns the database settings into a pgxpool config with
// serializable session setup installed.
func BuildPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	}

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return configureSession(ctx, conn)
	}

	if cfg.UsesURL() && cfg.RelaxedTLS {
		relaxTLS(poolCfg.ConnConfig)
	}

	return poolCfg, nil
}

// relaxTLS forces an encrypted transport without certificate validation.
// Plaintext fallbacks are dropped.
func relaxTLS(cc *pgx.ConnConfig) {
	cc.TLSConfig = insecureTLS(cc.Host)

	fallbacks := make([]*pgconn.FallbackConfig, 0, len(cc.Fallbacks))
	for _, fb := range cc.Fallbacks {
		if fb.TLSConfig == nil {
			continue
		}
		fb.TLSConfig = insecureTLS(fb.Host)
		fallbacks = append(fallbacks, fb)
	}
	cc.Fallbacks = fallbacks
}

func insecureTLS(host string) *tls.Config {
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // managed databases commonly present self-signed chains
	}
}

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := BuildPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Uint16("port", poolCfg.ConnConfig.Port).
		Str("dbname", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Bool("tls", poolCfg.ConnConfig.TLSConfig != nil).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}
