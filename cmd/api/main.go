package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tm-intent-classifier/config"
	_ "tm-intent-classifier/docs" // Swagger docs
	"tm-intent-classifier/internal/classify/classifier"
	classifyHTTP "tm-intent-classifier/internal/classify/delivery/http"
	"tm-intent-classifier/internal/classify/usecase"
	"tm-intent-classifier/internal/httpserver"
	"tm-intent-classifier/pkg/genaihub"
	"tm-intent-classifier/pkg/log"
)

// @title       Talent Management Intent Classifier API
// @description Classifies user queries against SAP SuccessFactors Talent Management topics and returns relevant SAP Help Portal links.
// @version     1.0.0
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Talent Management Intent Classifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Classifier: live LLM with keyword fallback, or keyword-only when
	// the AI Core service key is incomplete.
	cls := buildClassifier(ctx, cfg, logger)

	// 4. Classify domain
	classifyUC := usecase.New(logger, cls)
	classifyHandler := classifyHTTP.New(logger, classifyUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ClassifyHandler: classifyHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func buildClassifier(ctx context.Context, cfg *config.Config, logger log.Logger) classifier.Classifier {
	if !cfg.AICore.Complete() {
		logger.Warn(ctx, "AI Core service key incomplete, running with keyword classifier only")
		return classifier.NewMock()
	}

	timeout, err := time.ParseDuration(cfg.GenAIHub.Timeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid genaihub timeout %q, using default: %v", cfg.GenAIHub.Timeout, err)
		timeout = genaihub.DefaultTimeout
	}

	hub, err := genaihub.New(genaihub.Config{
		AuthURL:       cfg.AICore.AuthURL,
		ClientID:      cfg.AICore.ClientID,
		ClientSecret:  cfg.AICore.ClientSecret,
		ResourceGroup: cfg.AICore.ResourceGroup,
		BaseURL:       cfg.AICore.BaseURL,
		Model:         cfg.GenAIHub.Model,
		Timeout:       timeout,
	})
	if err != nil {
		logger.Warnf(ctx, "Generative AI Hub client unavailable, running with keyword classifier only: %v", err)
		return classifier.NewMock()
	}

	logger.Infof(ctx, "Generative AI Hub classifier enabled (model: %s)", cfg.GenAIHub.Model)
	return classifier.WithFallback(classifier.NewLLM(hub, logger), classifier.NewMock(), logger)
}
