// Package server boots the HTTP API: configuration, logging sinks, database,
// cache, middleware stack, routes, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/app/routes"
	"github.com/shashiranjanraj/arogya/config"
	"github.com/shashiranjanraj/arogya/pkg/cache"
	"github.com/shashiranjanraj/arogya/pkg/database"
	"github.com/shashiranjanraj/arogya/pkg/logger"
	"github.com/shashiranjanraj/arogya/pkg/metrics"
	"github.com/shashiranjanraj/arogya/pkg/middleware"
	"github.com/shashiranjanraj/arogya/pkg/reqid"
	"github.com/shashiranjanraj/arogya/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	mongoSink, err := logger.EnableMongo()
	if err != nil {
		logger.Warn("mongo log sink disabled", "error", err)
	}
	if mongoSink != nil {
		defer mongoSink.Close()
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Redis is an optional read-through cache; the app runs without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	if err := database.DB.AutoMigrate(&models.User{}, &models.Order{}); err != nil {
		return err
	}

	handler := buildHandler()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildHandler assembles the middleware stack and mounts the routes.
func buildHandler() http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, database.DB)

	return r.Handler()
}
