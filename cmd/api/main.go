package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohanv/vibes/internal/api"
	"github.com/rohanv/vibes/internal/config"
	"github.com/rohanv/vibes/internal/logger"
	"github.com/rohanv/vibes/internal/repository"
	"github.com/rohanv/vibes/internal/service"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	recommendationRepo := repository.NewRecommendationRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Initialize services
	llmService := service.NewLLMService(&service.LLMConfig{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	})

	generatorService := service.NewGeneratorService(
		llmService,
		recommendationRepo,
		appLogger,
		&service.GeneratorConfig{
			ImageBaseURL: cfg.Image.BaseURL,
		},
	)

	recommendService := service.NewRecommendService(
		recommendationRepo,
		generatorService,
		appLogger,
		&service.RecommendServiceConfig{
			Freshness: cfg.Recommend.Freshness,
		},
	)

	preferenceService := service.NewPreferenceService(preferenceRepo, appLogger)
	browseService := service.NewBrowseService(recommendationRepo)
	statsService := service.NewStatsService(recommendationRepo)

	// Setup router
	router := api.SetupRouter(recommendService, preferenceService, browseService, statsService, cfg, appLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting API server: port=%d, mode=%s, model=%s",
			cfg.Server.Port, cfg.Server.Mode, llmService.GetModel())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
