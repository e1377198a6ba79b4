package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"group-exercise-api/internal/config"
	"group-exercise-api/internal/database"
	"group-exercise-api/internal/job"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/router"
	"group-exercise-api/internal/service"
	"group-exercise-api/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Group Exercise Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// Initialize database
	db, err := database.New(database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	// Run auto migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	// Initialize metrics and query instrumentation
	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	logger.Info("Metrics initialized")

	// Initialize Redis (선택 사항 - 없어도 서비스는 동작함)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			logger.Warn("Failed to connect to Redis, detail cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			logger.Info("Redis connected successfully")
		}
	}

	// Initialize storage backend
	var store storage.Storage
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewS3Storage(cfg.Storage.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		logger.Info("S3 storage initialized",
			zap.String("bucket", cfg.Storage.S3.Bucket),
			zap.String("region", cfg.Storage.S3.Region),
		)
	default:
		store = storage.NewLocalStorage(cfg.Storage.UploadDir)
		logger.Info("Local storage initialized", zap.String("upload_dir", cfg.Storage.UploadDir))
	}

	// Start business metrics collector
	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Schedule nightly badge reconciliation
	groupRepo := repository.NewGroupRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	badgeService := service.NewBadgeService(groupRepo, participantRepo, recordRepo, m, logger)
	reconcileJob := job.NewBadgeReconcileJob(groupRepo, badgeService, logger)

	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Badge.ReconcileCron, reconcileJob); err != nil {
		logger.Warn("Failed to schedule badge reconciliation job",
			zap.String("spec", cfg.Badge.ReconcileCron),
			zap.Error(err),
		)
	} else {
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Badge reconciliation job scheduled", zap.String("spec", cfg.Badge.ReconcileCron))
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		Cfg:     cfg,
		DB:      db,
		Redis:   redisClient,
		Storage: store,
		Metrics: m,
		Logger:  logger,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Group Exercise Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
