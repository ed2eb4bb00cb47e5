package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumekit/internal/api/middleware"
	"resumekit/internal/auth"
	"resumekit/internal/config"
	"resumekit/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
) {
	resumeHandler := NewResumeHandler(db, asynqClient, storageClient, ResumeHandlerOptions{
		MaxResumes:      cfg.API.MaxResumes,
		DownloadLinkTTL: cfg.API.DownloadLinkExpiry(),
		ExportMaxRetry:  cfg.Worker.MaxRetry,
	})
	authHandler := NewAuthHandler(db, authService, redisClient, logger, AuthHandlerOptions{
		LoginRateLimitPerHour: cfg.Auth.LoginRateLimitPerHour,
		LoginLockThreshold:    cfg.Auth.LoginLockThreshold,
		LoginLockTTL:          cfg.Auth.LoginLockTTL(),
		CookieDomain:          cfg.API.CookieDomain,
	})
	wsHandler := NewWsHandler(redisClient, authService, logger, cfg.API.AllowedOrigins)
	templateHandler := NewTemplateHandler()
	authMiddleware := middleware.AuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)
		v1.GET("/templates", templateHandler.ListTemplates)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
			authGroup.POST("/change-password", authMiddleware, authHandler.ChangePassword)
		}

		resumeGroup := v1.Group("/resume")
		resumeGroup.Use(authMiddleware)
		{
			resumeGroup.POST("", resumeHandler.CreateResume)
			resumeGroup.GET("", resumeHandler.ListResumes)
			resumeGroup.GET("/latest", resumeHandler.GetLatestResume)
			resumeGroup.GET("/:id", resumeHandler.GetResume)
			resumeGroup.PUT("/:id", resumeHandler.UpdateResume)
			resumeGroup.DELETE("/:id", resumeHandler.DeleteResume)
			resumeGroup.GET("/:id/preview", resumeHandler.PreviewResume)
			resumeGroup.POST("/:id/export", resumeHandler.ExportResume)
			resumeGroup.GET("/:id/download-link", resumeHandler.GetDownloadLink)
		}
	}
}
