//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"autoscribe/internal/api/server"
	"autoscribe/internal/app/converter"
	"autoscribe/internal/config"
)

func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(CoreSet, provideServerConfig, provideServiceContainer, server.NewServer)
	return &server.Server{}, nil
}

func InitializeConverter(cfg *config.Config, logger *zap.Logger) (*converter.Converter, error) {
	wire.Build(CoreSet, converter.NewConverter)
	return &converter.Converter{}, nil
}

func InitializeProgressAwareConverter(cfg *config.Config, logger *zap.Logger, progress converter.ProgressConfig) (*converter.ProgressAwareConverter, error) {
	wire.Build(CoreSet, converter.NewConverter, converter.NewProgressAwareConverter)
	return &converter.ProgressAwareConverter{}, nil
}
