package app

import (
	"context"
	"time"

	"github.com/google/wire"
	"go.uber.org/zap"

	"autoscribe/internal/api/server"
	v1routes "autoscribe/internal/api/v1/routes"
	"autoscribe/internal/api/v1/services"
	"autoscribe/internal/app/api/assemblyai"
	"autoscribe/internal/app/api/elevateai"
	"autoscribe/internal/app/api/openai/whisper"
	"autoscribe/internal/app/api/provider"
	"autoscribe/internal/app/api/youtube"
	"autoscribe/internal/app/job"
	"autoscribe/internal/app/storage"
	"autoscribe/internal/config"
)

const minioConnectTimeout = 10 * time.Second

// CoreSet builds everything a batch needs: adapters, registry, store, orchestrator
var CoreSet = wire.NewSet(provideRegistry, provideStore, job.NewOrchestrator)

// provideRegistry registers every adapter. Keys are checked when an adapter
// is used, so a partially configured deployment still starts.
func provideRegistry(cfg *config.Config, logger *zap.Logger) (*provider.Registry, error) {
	return provider.NewRegistry(
		elevateai.NewProvider(cfg.ElevateAI, logger),
		assemblyai.NewProvider(cfg.AssemblyAI, logger),
		whisper.NewRemoteTranscriber(cfg.Whisper, logger),
		youtube.NewProvider(cfg.YouTube, logger),
	)
}

func provideStore(cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	if cfg.StorageBackend != "minio" {
		return storage.NewLocalStore(cfg.TranscriptsDir), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), minioConnectTimeout)
	defer cancel()
	store, err := storage.NewMinioStore(ctx, cfg.MinioStorage())
	if err != nil {
		return nil, err
	}
	logger.Info("using object storage", zap.String("endpoint", cfg.Minio.Endpoint), zap.String("bucket", cfg.Minio.Bucket))
	return store, nil
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		ReadTimeout:     30 * time.Minute,
		WriteTimeout:    60 * time.Minute,
		IdleTimeout:     2 * time.Minute,
		Environment:     cfg.Env,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		MultipartMemory: cfg.MultipartMemory,
	}
}

func provideServiceContainer(cfg *config.Config, orchestrator *job.Orchestrator, store storage.Store, logger *zap.Logger) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(orchestrator, cfg.UploadDir, logger),
		DownloadService:      services.NewDownloadService(store),
	}
}
