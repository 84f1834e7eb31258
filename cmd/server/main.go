package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"orion/internal/config"
	"orion/internal/handlers"
	"orion/internal/middleware"
	"orion/internal/repositories/firestoredb"
	"orion/internal/services"
	"orion/pkg/cache"
	"orion/pkg/database"
	"orion/pkg/logger"
	"orion/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	dbClient, err := database.Connect(ctx, cfg.Firebase)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to document store")
	}
	defer dbClient.Close()

	// Optional cache; repositories are nil-safe without it.
	var trailCache firestoredb.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("redis unavailable, continuing without cache")
		} else {
			defer redisCache.Close()
			trailCache = redisCache
		}
	}

	// Repositories
	trailRepo := firestoredb.NewTrailRepository(dbClient, trailCache, appLogger)
	reviewRepo := firestoredb.NewReviewRepository(dbClient, appLogger)
	alertRepo := firestoredb.NewAlertRepository(dbClient, appLogger)
	reportRepo := firestoredb.NewReportRepository(dbClient, appLogger)
	userRepo := firestoredb.NewUserRepository(dbClient, appLogger)

	// Services
	trailService := services.NewTrailService(trailRepo, appLogger)
	reviewService := services.NewReviewService(reviewRepo, trailRepo, appLogger)
	alertService := services.NewAlertService(alertRepo, trailRepo, appLogger)
	reportService := services.NewReportService(reportRepo, trailRepo, appLogger)
	userService := services.NewUserService(userRepo, trailRepo, appLogger)

	// Handlers
	trailHandler := handlers.NewTrailHandler(trailService, appLogger)
	reviewHandler := handlers.NewReviewHandler(reviewService, appLogger)
	alertHandler := handlers.NewAlertHandler(alertService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)
	userHandler := handlers.NewUserHandler(userService, appLogger)
	healthHandler := handlers.NewHealthHandler(handlers.PingFunc(func(ctx context.Context) error {
		return database.Ping(ctx, dbClient)
	}), appLogger)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	// Auth guard wraps mutating routes; a no-op when auth is disabled.
	auth := func(c *gin.Context) { c.Next() }
	if cfg.Security.AuthEnabled {
		auth = middleware.AuthRequired(cfg.Security.JWTSecret)
	}

	api := router.Group("/api")
	{
		routes.SetupTrailRoutes(api, trailHandler, auth)
		routes.SetupReviewRoutes(api, reviewHandler, auth)
		routes.SetupAlertRoutes(api, alertHandler, auth)
		routes.SetupReportRoutes(api, reportHandler, auth)
		routes.SetupUserRoutes(api, userHandler, auth)
	}

	router.GET("/health", healthHandler.Health)
	router.GET("/health/db", healthHandler.HealthDB)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.WithField("addr", addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("forced shutdown")
	}
}
