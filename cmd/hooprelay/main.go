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
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/courtside-cloud/hooprelay/internal/config"
	logpkg "github.com/courtside-cloud/hooprelay/internal/logger"
	"github.com/courtside-cloud/hooprelay/internal/metrics"
	"github.com/courtside-cloud/hooprelay/internal/repository/ledger"
	"github.com/courtside-cloud/hooprelay/internal/transport/cbbd"
	chiTransport "github.com/courtside-cloud/hooprelay/internal/transport/chi"
	"github.com/courtside-cloud/hooprelay/internal/transport/oddsapi"
	relayuc "github.com/courtside-cloud/hooprelay/internal/usecase/relay"
	usageuc "github.com/courtside-cloud/hooprelay/internal/usecase/usage"
	"github.com/courtside-cloud/hooprelay/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	// Never log the secrets themselves, only whether they are set.
	logger.Info("Starting hooprelay proxy",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("daily_limit", cfg.Quota.DailyLimit),
		zap.Bool("stats_key_set", cfg.Upstreams.Stats.APIKey != ""),
		zap.Bool("odds_key_set", cfg.Upstreams.Odds.APIKey != ""),
	)

	// Register upstream metrics explicitly (no init())
	metrics.RegisterUpstreamMetrics()

	// Outbound provider clients
	statsClient := cbbd.New(&cbbd.Config{
		APIKey:  cfg.Upstreams.Stats.APIKey,
		BaseURL: cfg.Upstreams.Stats.BaseURL,
		Timeout: time.Duration(cfg.Upstreams.Stats.TimeoutSec) * time.Second,
		Logger:  logger,
	})
	oddsClient := oddsapi.New(&oddsapi.Config{
		APIKey:     cfg.Upstreams.Odds.APIKey,
		BaseURL:    cfg.Upstreams.Odds.BaseURL,
		Sport:      cfg.Upstreams.Odds.Sport,
		Regions:    cfg.Upstreams.Odds.Regions,
		Markets:    cfg.Upstreams.Odds.Markets,
		OddsFormat: cfg.Upstreams.Odds.OddsFormat,
		Timeout:    time.Duration(cfg.Upstreams.Odds.TimeoutSec) * time.Second,
		Logger:     logger,
	})

	// Usage ledger — process lifetime, in-memory only
	led := ledger.New(cfg.Quota.DailyLimit)

	// Use case services
	relaySvc := relayuc.New(oddsClient, statsClient, led, logger).
		WithDefaultSeason(cfg.Upstreams.Stats.DefaultSeason)
	usageSvc := usageuc.New(led)

	// Create chi server
	server := chiTransport.NewServer(relaySvc, usageSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
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
						"error": "internal error",
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
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
