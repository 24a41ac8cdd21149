// Package main BODMAS Master API
// @title BODMAS Master API
// @version 1.0
// @description A step-by-step BODMAS tutoring service for solving expressions, practicing questions and tracking attempts
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@bodmaslab.com
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/bodmaslab/bodmas-master/docs"
	"github.com/bodmaslab/bodmas-master/internal/router"
	"github.com/bodmaslab/bodmas-master/internal/server"
	"github.com/bodmaslab/bodmas-master/internal/solver"
	"github.com/bodmaslab/bodmas-master/internal/storage"
	"github.com/bodmaslab/bodmas-master/internal/storage/factory"
	"github.com/bodmaslab/bodmas-master/internal/tutor"
	pkgserver "github.com/bodmaslab/bodmas-master/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	healthChecker := pkgserver.HealthChecker(pkgserver.NewOkHealthChecker())

	var store storage.Store
	if cfg.StorageConfig.Enabled {
		var storeChecker pkgserver.HealthChecker
		store, storeChecker, err = factory.NewStore(context.Background(), &cfg.StorageConfig)
		if err != nil {
			slog.Error("Failed to create attempt store", "error", err)
			os.Exit(1)
			return
		}
		healthChecker = storeChecker
		slog.Info("Attempt tracking enabled", "storage", cfg.StorageConfig.Type)
	} else {
		slog.Info("Attempt tracking disabled")
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "BODMAS Master API is running")
	})

	bank, err := loadBank(cfg.QuestionsFile)
	if err != nil {
		slog.Error("Failed to load question bank", "error", err)
		os.Exit(1)
		return
	}

	var routerOpts []router.TutorRouterOption
	if store != nil {
		routerOpts = append(routerOpts, router.WithAttemptStore(store))
	}

	tutorRouter := router.NewTutorRouter(s.Echo, solver.New(), bank, tutor.NewLessons(), routerOpts...)
	tutorRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		if store != nil {
			if err := store.Close(); err != nil {
				slog.Error("Failed to close attempt store", "error", err)
			}
		}
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func loadBank(path string) (*tutor.Bank, error) {
	if path == "" {
		return tutor.NewBank(tutor.DefaultBank()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	questions, err := tutor.NewBankLoader(f).Load(true)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded question bank", "path", path, "questions", len(questions))
	return tutor.NewBank(questions), nil
}
