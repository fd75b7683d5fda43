package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/config"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/db"
	dbMemory "github.com/izuchukwuMcGibson/HNG-stage-1/internal/db/memory"
	dbRedis "github.com/izuchukwuMcGibson/HNG-stage-1/internal/db/redis"
	logpkg "github.com/izuchukwuMcGibson/HNG-stage-1/internal/logger"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/metrics"
	recordrepo "github.com/izuchukwuMcGibson/HNG-stage-1/internal/repository/record"
	chiTransport "github.com/izuchukwuMcGibson/HNG-stage-1/internal/transport/chi"
	healthuc "github.com/izuchukwuMcGibson/HNG-stage-1/internal/usecase/health"
	stringsuc "github.com/izuchukwuMcGibson/HNG-stage-1/internal/usecase/strings"
	"github.com/izuchukwuMcGibson/HNG-stage-1/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting string analyzer API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store := openStore(cfg, logger)
	defer store.Close()

	// Register domain metrics explicitly (no init())
	metrics.RegisterQueryMetrics()

	// Repositories and use case services
	repo := recordrepo.New(store).WithKeyPrefix(cfg.Storage.KeyPrefix)
	stringsSvc := stringsuc.New(repo)
	healthSvc := healthuc.New(store, repo, store.Name())

	// Create chi server
	server := chiTransport.NewServer(stringsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore creates the configured database store, falling back to the
// in-memory store when the database is unreachable and fallback is enabled.
func openStore(cfg config.Config, logger *zap.Logger) db.Store {
	if cfg.Database.Driver == "memory" {
		logger.Info("Using in-memory store")
		return dbMemory.NewStore()
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err == nil {
		timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		waitErr := store.WaitForReady(context.Background(), timeout)
		if waitErr == nil {
			logger.Info("Connected to database")
			return store
		}
		store.Close()
		err = waitErr
	}

	if !cfg.Database.FallbackToMemory {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	logger.Warn("Database unreachable, falling back to in-memory store", zap.Error(err))
	return dbMemory.NewStore()
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
