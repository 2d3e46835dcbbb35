package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/NomadCrew/feedback-service/db"
	"github.com/NomadCrew/feedback-service/handlers"
	"github.com/NomadCrew/feedback-service/internal/events"
	"github.com/NomadCrew/feedback-service/internal/store/postgres"
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/router"
	"github.com/NomadCrew/feedback-service/services"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title        Feedback Service API
// @version      1.0
// @description  Collects anonymous or named feedback and lists it page by page.
// @BasePath     /
func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database.URL()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Keep the interface nil when Redis is disabled so health checks skip it.
	var redisClient redis.UniversalClient
	var publisher types.EventPublisher = events.NoopPublisher{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(config.ConfigureRedisOptions(&cfg.Redis))
		defer func() { _ = client.Close() }()
		if err := config.PingRedis(ctx, client, 3, time.Second); err != nil {
			log.Warnw("Redis unavailable at startup, events will be retried per publish", "error", err)
		}
		redisClient = client

		eventsCfg := events.DefaultConfig()
		if cfg.Redis.Channel != "" {
			eventsCfg.Channel = cfg.Redis.Channel
		}
		publisher = events.NewRedisPublisher(client, eventsCfg)
	}

	workerPool := services.NewWorkerPool(cfg.WorkerPool)
	workerPool.Start()

	feedbackService := services.NewFeedbackService(
		postgres.NewFeedbackStore(pool),
		publisher,
		workerPool,
		cfg.Pagination,
	)

	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)
	healthService.SetPoolStatsGetter(func() (int32, int32) {
		stat := pool.Stat()
		return stat.AcquiredConns(), stat.MaxConns()
	})
	healthService.SetWorkerPool(workerPool)

	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		FeedbackHandler: handlers.NewFeedbackHandler(feedbackService, cfg.Pagination.DefaultSize),
		HealthHandler:   handlers.NewHealthHandler(healthService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}

	poolCtx, cancelPool := context.WithTimeout(context.Background(),
		time.Duration(cfg.WorkerPool.ShutdownTimeoutSeconds)*time.Second)
	defer cancelPool()
	if err := workerPool.Shutdown(poolCtx); err != nil {
		log.Warnw("Worker pool did not drain in time", "error", err)
	}

	log.Info("Server exited")
}
