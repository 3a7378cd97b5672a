package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardcheck/internal/audit"
	auditmem "cardcheck/internal/audit/store/memory"
	auditpg "cardcheck/internal/audit/store/postgres"
	"cardcheck/internal/issuer"
	issuersvc "cardcheck/internal/issuer/service"
	"cardcheck/internal/platform/config"
	"cardcheck/internal/platform/httpserver"
	"cardcheck/internal/platform/logger"
	platformredis "cardcheck/internal/platform/redis"
	ratelimitmetrics "cardcheck/internal/ratelimit/metrics"
	ratelimitmw "cardcheck/internal/ratelimit/middleware"
	"cardcheck/internal/ratelimit/store/bucket"
	httptransport "cardcheck/internal/transport/http"
	"cardcheck/internal/validation"
	validationmetrics "cardcheck/internal/validation/metrics"
	validationsvc "cardcheck/internal/validation/service"
	validationstore "cardcheck/internal/validation/store"
)

// auditBufferSize bounds the async audit queue before events are dropped.
const auditBufferSize = 1024

// main wires dependencies, mounts the router, and owns the server
// lifecycle. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it the cache and rate limiter fall back to
	// their in-process implementations.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	health := map[string]httptransport.HealthChecker{}

	var cache validationsvc.ResultCache
	var bucketStore ratelimitmw.BucketStore
	if redisClient != nil {
		cache = validationstore.NewRedisCache(redisClient.Client, cfg.Cache.TTL)
		bucketStore = bucket.NewRedisBucketStore(redisClient.Client)
		health["redis"] = redisClient
		defer redisClient.Close()
	} else {
		cache = validationstore.NewInMemoryCache(cfg.Cache.TTL)
		bucketStore = bucket.NewInMemoryBucketStore()
	}

	// Postgres is optional the same way: without a DSN audit events stay in
	// process memory.
	var auditStore audit.Store = auditmem.NewInMemoryStore()
	if cfg.Postgres.DSN != "" {
		db, err := auditpg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		auditStore = auditpg.NewPostgres(db)
	}

	auditPublisher := audit.NewPublisher(auditStore, audit.WithAsyncBuffer(auditBufferSize))
	defer auditPublisher.Close()

	validationService, err := validation.NewService(cache,
		validationsvc.WithLogger(log),
		validationsvc.WithMetrics(validationmetrics.New()),
		validationsvc.WithAuditPublisher(auditPublisher),
	)
	if err != nil {
		log.Error("validation service init failed", "error", err)
		os.Exit(1)
	}

	issuerService := issuer.NewService(
		issuersvc.WithLogger(log),
		issuersvc.WithAuditPublisher(auditPublisher),
	)

	rateLimiter := ratelimitmw.New(bucketStore, log, cfg.RateLimit.Limit, cfg.RateLimit.Window,
		ratelimitmw.WithMetrics(ratelimitmetrics.New()),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Validation: validation.NewHandler(validationService, log),
		Issuers:    issuer.NewHandler(issuerService, log),
		RateLimit:  rateLimiter,
		Health:     health,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
