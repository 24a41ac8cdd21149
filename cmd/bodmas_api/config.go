package main

import (
	"log/slog"
	"os"

	"github.com/bodmaslab/bodmas-master/internal/storage/factory"
	"github.com/bodmaslab/bodmas-master/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type BodmasApiConfig struct {
	StorageConfig factory.StorageConfig
	// QuestionsFile optionally replaces the built-in question bank.
	QuestionsFile string
}

func (as *AppConfig) Load() (*BodmasApiConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/bodmas_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &BodmasApiConfig{
		StorageConfig: *storageCfg,
		QuestionsFile: os.Getenv("QUESTIONS_FILE"),
	}, nil
}
