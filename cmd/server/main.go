// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	appConfig "github.com/flexquotes/backend/internal/config"
	"github.com/flexquotes/backend/internal/database/database"
	"github.com/flexquotes/backend/internal/database/migrate"
	"github.com/flexquotes/backend/internal/health"
	"github.com/flexquotes/backend/internal/middleware"
	quoteRouter "github.com/flexquotes/backend/internal/quote/router"
	readapiRouter "github.com/flexquotes/backend/internal/readapi/router"
	teamRouter "github.com/flexquotes/backend/internal/team/router"
	userRouter "github.com/flexquotes/backend/internal/user/router"
	"github.com/flexquotes/backend/pkg/authtoken"
	"github.com/flexquotes/backend/pkg/logger"
	"github.com/flexquotes/backend/pkg/redisstore"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to run migrations", "error", err)
	}

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled() {
		redisClient, err = redisstore.New(context.Background(), cfg.RateLimit.RedisURL)
		if err != nil {
			appLogger.Fatalw("failed to connect to redis", "error", err)
		}
		defer func() {
			_ = redisClient.Close()
		}()
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(appLogger))
	if redisClient != nil {
		r.Use(middleware.RateLimit(redisClient, cfg.RateLimit, appLogger))
	}

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	// The read facade and health endpoint stay open; everything else
	// requires a valid session token.
	readapiRouter.RegisterRoutes(r, db, appLogger)

	validator := authtoken.NewValidator(cfg.Auth.SessionSecret)
	authorized := r.Group("/", middleware.Auth(validator, appLogger))
	teamRouter.RegisterRoutes(authorized, db, appLogger)
	quoteRouter.RegisterRoutes(authorized, db, appLogger)
	userRouter.RegisterRoutes(authorized, db, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}

	appLogger.Infow("server stopped")
}
