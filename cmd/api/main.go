package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serializable-txn/config"
	httpHandler "serializable-txn/internal/adapter/http/handler"
	pgStorage "serializable-txn/internal/adapter/storage/postgres"
	"serializable-txn/internal/core/ports"
	"serializable-txn/internal/service"
	"serializable-txn/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env may supply DATABASE_URL and TXDB_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int("tx_max_attempts", cfg.Tx.MaxAttempts).
		Msg("Starting serializable transaction service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The pool lives for the whole process and is closed on shutdown.
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	scope := pgStorage.NewScope(pgStorage.NewConnPool(pool))
	transactor := pgStorage.NewTransactor(scope, log, pgStorage.WithMaxAttempts(cfg.Tx.MaxAttempts))
	pgHealth := pgStorage.NewHealthCheck(scope)

	counterSvc := service.NewCounterService(transactor, log)
	if err := counterSvc.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare schema")
	}

	// A pool the monitor declares unrecoverable ends the process; the
	// supervisor is expected to restart it.
	monitor := pgStorage.NewMonitor(pgHealth, cfg.Monitor, log)
	go func() {
		if err := monitor.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Connection pool failed, exiting")
		}
	}()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CounterSvc:     counterSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
