package routes

import (
	"github.com/gin-gonic/gin"

	"autoscribe/internal/api/v1/handlers"
	"autoscribe/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	DownloadService      services.DownloadService
	MaxUploadBytes       int64
}

// RegisterRoutes registers the API routes on the /api group
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	system := handlers.NewSystemHandler()
	router.GET("/health", system.Health)
	router.GET("/capabilities", system.Capabilities)

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, container.MaxUploadBytes)
	transcribe := router.Group("/transcribe")
	{
		transcribe.POST("/file", transcriptionHandler.TranscribeFile)
		transcribe.POST("/youtube", transcriptionHandler.TranscribeYouTube)
	}

	downloadHandler := handlers.NewDownloadHandler(container.DownloadService)
	router.GET("/download/:jobId/:filename", downloadHandler.Download)
}
