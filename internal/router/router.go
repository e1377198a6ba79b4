package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/config"
	"group-exercise-api/internal/handler"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/middleware"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/service"
	"group-exercise-api/internal/storage"
)

// Config holds all dependencies the router needs
type Config struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Storage storage.Storage
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// Setup wires repositories, services and handlers into a gin engine
func Setup(rc Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(rc.Logger))
	r.Use(middleware.Logger(rc.Logger))
	r.Use(middleware.CORS(rc.Cfg.Server.AllowedOrigins))
	if rc.Metrics != nil {
		r.Use(middleware.Metrics(rc.Metrics))
	}

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(rc.DB)
	participantRepo := repository.NewParticipantRepository(rc.DB)
	recordRepo := repository.NewRecordRepository(rc.DB)

	// Initialize services
	images := service.NewImageService(rc.Cfg.Storage.BaseURL)
	cache := service.NewGroupCache(rc.Redis, rc.Logger)
	badgeService := service.NewBadgeService(groupRepo, participantRepo, recordRepo, rc.Metrics, rc.Logger)
	groupService := service.NewGroupService(groupRepo, recordRepo, badgeService, images, cache, rc.Metrics, rc.Logger)
	likeService := service.NewLikeService(groupRepo, badgeService, cache, rc.Metrics, rc.Logger)
	participantService := service.NewParticipantService(groupRepo, participantRepo, badgeService, cache, rc.Logger)
	recordService := service.NewRecordService(groupRepo, participantRepo, recordRepo, badgeService, images, cache, rc.Metrics, rc.Logger)

	// Initialize handlers
	groupHandler := handler.NewGroupHandler(groupService, rc.Storage, rc.Logger)
	likeHandler := handler.NewLikeHandler(likeService, rc.Logger)
	participantHandler := handler.NewParticipantHandler(participantService, rc.Logger)
	recordHandler := handler.NewRecordHandler(recordService, rc.Storage, rc.Logger)
	imageHandler := handler.NewImageHandler(rc.Storage, images, rc.Logger)
	healthHandler := handler.NewHealthHandler(rc.DB, rc.Redis)

	// Health endpoints (no base path)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Locally stored uploads are served statically
	if rc.Cfg.Storage.Driver == "local" {
		r.Static("/uploads", rc.Cfg.Storage.UploadDir)
	}

	// API routes with base path
	api := r.Group(rc.Cfg.Server.BasePath)
	{
		groups := api.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:groupId", groupHandler.GetGroup)
			groups.PATCH("/:groupId", groupHandler.UpdateGroup)
			groups.DELETE("/:groupId", groupHandler.DeleteGroup)

			// 추천 (단수/복수 경로 모두 허용)
			groups.POST("/:groupId/likes", likeHandler.IncrementLike)
			groups.DELETE("/:groupId/likes", likeHandler.DecrementLike)
			groups.POST("/:groupId/like", likeHandler.IncrementLike)
			groups.DELETE("/:groupId/like", likeHandler.DecrementLike)

			groups.POST("/:groupId/participants", participantHandler.JoinGroup)
			groups.DELETE("/:groupId/participants", participantHandler.LeaveGroup)

			groups.GET("/:groupId/records", recordHandler.ListRecords)
			groups.POST("/:groupId/records", recordHandler.CreateRecord)
			groups.GET("/:groupId/records/:recordId", recordHandler.GetRecord)

			groups.GET("/:groupId/rank", recordHandler.GetRank)
		}

		imageRoutes := api.Group("/images")
		{
			imageRoutes.POST("", imageHandler.UploadImage)
			imageRoutes.POST("/multi", imageHandler.UploadImages)
		}
	}

	return r
}
