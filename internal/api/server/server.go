package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "autoscribe/docs" // Generated swagger docs
	"autoscribe/internal/api/middleware"
	v1routes "autoscribe/internal/api/v1/routes"
	"autoscribe/internal/app/logging"
)

// Config represents API server configuration
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	Environment     string
	MaxUploadBytes  int64
	MultipartMemory int64
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(config Config, container *v1routes.ServiceContainer, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger).Named("http")

	switch config.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = config.MultipartMemory

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger, "/api/health"))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	container.MaxUploadBytes = config.MaxUploadBytes
	api := router.Group("/api")
	api.Use(middleware.MaxBodySize(config.MaxUploadBytes))
	v1routes.RegisterRoutes(api, container)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "autoscribe API",
			"version":       "1.0",
			"documentation": "/swagger/index.html",
			"endpoints": gin.H{
				"health":       "/api/health",
				"capabilities": "/api/capabilities",
				"file":         "/api/transcribe/file",
				"youtube":      "/api/transcribe/youtube",
				"download":     "/api/download/{jobId}/{filename}",
			},
		})
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start listens until Shutdown is called. It returns nil after a graceful
// shutdown and the listen error otherwise.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server failed", zap.Error(err))
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
