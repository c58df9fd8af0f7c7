// Package main is the entrypoint for the admin API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/handler"
	mw "github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/middleware"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/catalog"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/config"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/metrics"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
)

const shutdownTimeout = 30 * time.Second

// logLevel is lowered to Debug outside production once config is loaded.
var logLevel = new(slog.LevelVar)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config, failing fast on invalid values
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.IsProduction() {
		logLevel.Set(slog.LevelDebug)
	}
	slog.Info("config loaded", "env", cfg.Server.Env, "metrics", cfg.Metrics.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to database
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	// 3. Run migrations
	if err := store.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "dir", cfg.Database.MigrationsDir)

	// 4. Create Redis cache
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis cache: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 5. Build router with dependencies
	var collectors *metrics.Collectors
	if cfg.Metrics.Enabled {
		collectors = metrics.New()
	}
	router := newRouter(cfg, store.NewPostgresStore(pool), redisCache, collectors)

	// 6. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newRouter wires the catalog service and handlers over st and c.
func newRouter(cfg *config.Config, st store.Store, c cache.Cache, m *metrics.Collectors) http.Handler {
	svc := catalog.New(st, c,
		catalog.WithMetrics(m),
		catalog.WithLogger(slog.Default()),
		catalog.WithCacheTTL(cfg.Cache.TTL),
	)

	jobs := api.NewResourceHandlers[models.Job](svc.Jobs(), handler.PresentJob)
	jobs = api.WithSlugLookup[models.Job](jobs, svc.Jobs(), handler.PresentJob)

	return api.NewRouter(api.Dependencies{
		RateLimit: mw.NewRateLimit(c, cfg.RateLimit.PerMinute),
		Metrics:   m,

		HealthHandler: handler.NewHealthHandler(st, c),
		Jobs:          jobs,
		AdmitCards:    api.NewResourceHandlers[models.AdmitCard](svc.AdmitCards(), handler.PresentAdmitCard),
	})
}
