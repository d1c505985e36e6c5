package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/brew-directory/internal/server"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/factory"
	"github.com/DjordjeVuckovic/brew-directory/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type DirectoryApiConfig struct {
	ServerConfig  server.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*DirectoryApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/directory_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &DirectoryApiConfig{
		ServerConfig:  *serverCfg,
		StorageConfig: *storageCfg,
	}, nil
}
