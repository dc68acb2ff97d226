package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripbook/api/routes"
	"tripbook/internal/notifications"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/internal/shared/middleware"
	"tripbook/pkg/logger"
	"tripbook/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title Tripbook API
// @version 1.0
// @description Trip booking lifecycle and invoice rendering.
// @BasePath /
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	// Set Gin mode before building the logger so the handler format matches
	gin.SetMode(cfg.GinMode)
	appLogger = logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	logger.SetDefault(appLogger)

	appLogger.Info("Starting tripbook",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("git_commit", GitCommit),
		slog.String("store", cfg.StoreDriver),
	)

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.InitDB(initCtx, cfg, appLogger)
	initCancel()
	if err != nil {
		appLogger.WithError(err).Error("failed to connect")
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.WithError(err).Error("Error closing connections")
		}
	}()

	publisher := setupPublisher(cfg, appLogger)
	defer func() {
		appLogger.Info("Stopping booking event publisher...")
		if err := publisher.Close(); err != nil {
			appLogger.WithError(err).Error("Error closing publisher")
		}
	}()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	switch {
	case cfg.RateLimit.Enabled && db.Redis != nil:
		rateLimiter = ratelimit.NewRateLimiter(db.Redis, &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			InvoiceRequests: cfg.RateLimit.InvoiceRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	case cfg.RateLimit.Enabled:
		appLogger.Warn("Rate limiting requested but Redis is disabled; continuing without it")
	default:
		appLogger.Info("Rate limiting disabled")
	}

	router, err := setupRouter(cfg, db, publisher, rateLimiter, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("failed to set up routes")
		publisher.Close()
		db.Close()
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.Bool("redis_cache", db.Redis != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("kafka_events", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Error("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}

	appLogger.Info("Server exited gracefully")
}

// setupPublisher returns a Kafka publisher when enabled. A broker that
// cannot be reached at startup downgrades to a no-op publisher.
func setupPublisher(cfg *config.Config, appLogger *logger.Logger) notifications.Publisher {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Kafka disabled, booking events will not be published")
		return notifications.NoopPublisher{}
	}

	producerConfig := notifications.DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.BookingTopic = cfg.Kafka.BookingTopic
	producerConfig.RetryMax = cfg.Kafka.RetryMax
	producerConfig.Timeout = cfg.Kafka.Timeout

	publisher, err := notifications.NewKafkaPublisher(producerConfig, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize Kafka publisher")
		appLogger.Info("Continuing without booking events")
		return notifications.NoopPublisher{}
	}

	appLogger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Kafka.Brokers),
		slog.String("topic", cfg.Kafka.BookingTopic),
	)
	return publisher
}

func setupRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher, rateLimiter *ratelimit.RateLimiter, appLogger *logger.Logger) (*gin.Engine, error) {
	engine := gin.New()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())
	engine.Use(middleware.CORS())

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	appRouter := routes.NewRouter(cfg, db, publisher, appLogger)
	if err := appRouter.SetupRoutes(engine); err != nil {
		return nil, err
	}

	return engine, nil
}
