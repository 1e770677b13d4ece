package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/userhub/internal/cache"
	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/db"
	httpx "github.com/geocoder89/userhub/internal/http"
	"github.com/geocoder89/userhub/internal/observability"
	"github.com/geocoder89/userhub/internal/repo/postgres"
	"github.com/geocoder89/userhub/internal/security"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing is optional, enabled by OTEL_EXPORTER_OTLP_ENDPOINT
	var shutdownTracer func(context.Context) error

	if cfg.OTLPEndpoint != "" {
		ctx, cancel := config.WithTimeout(5 * time.Second)

		var err error
		shutdownTracer, err = observability.InitTracer(ctx, "userhub", cfg.OTLPEndpoint)

		cancel()

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}
	}

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	bootCtx, cancelBoot := config.WithTimeout(10 * time.Second)

	if err := db.EnsureSchema(bootCtx, pool); err != nil {
		cancelBoot()
		log.Error("schema bootstrap failed", "err", err)
		os.Exit(1)
	}

	hasher := security.NewHasher(cfg.BcryptCost, cfg.HashWorkers)

	if err := db.EnsureAdminUser(bootCtx, pool, hasher, cfg); err != nil {
		cancelBoot()
		log.Error("admin seed failed", "err", err)
		os.Exit(1)
	}

	cancelBoot()

	// metrics
	registry := prometheus.NewRegistry()
	prom := observability.NewProm(registry)

	// readiness checks
	checks := map[string]func(context.Context) error{
		"postgres": pool.Ping,
	}

	// optional redis read cache
	var usersCache *cache.UsersCache

	if cfg.RedisAddr != "" {
		redisClient := cache.New(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		defer redisClient.Close()

		usersCache = cache.NewUsersCache(redisClient, cfg.CacheTTL, log)
		checks["redis"] = redisClient.Ping
	}

	usersRepo := postgres.NewUsersRepo(pool, prom)

	router := httpx.NewRouter(httpx.Deps{
		Log:      log,
		Store:    usersRepo,
		Hasher:   hasher,
		Cache:    usersCache,
		Prom:     prom,
		Registry: registry,
		Checks:   checks,
		Cfg:      cfg,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if shutdownTracer != nil {
			if err := shutdownTracer(ctx); err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
