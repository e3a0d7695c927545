package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-care-assistant/config"
	_ "customer-care-assistant/docs" // Swagger docs
	caHTTP "customer-care-assistant/internal/callanalysis/delivery/http"
	caUC "customer-care-assistant/internal/callanalysis/usecase"
	chatHTTP "customer-care-assistant/internal/chat/delivery/http"
	chatUC "customer-care-assistant/internal/chat/usecase"
	"customer-care-assistant/internal/gateway"
	grievanceHTTP "customer-care-assistant/internal/grievance/delivery/http"
	grievanceUC "customer-care-assistant/internal/grievance/usecase"
	"customer-care-assistant/internal/httpserver"
	"customer-care-assistant/internal/middleware"
	"customer-care-assistant/internal/speech"
	"customer-care-assistant/pkg/log"
)

// @title       Customer Care Assistant API
// @description Demonstration customer-care assistant: chatbot, grievance classification and call transcript analysis backed by an LLM gateway.
// @version     1
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

	logger.Info(ctx, "Starting Customer Care Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model gateway. A missing key only disables it; the service still
	// serves requests with degraded results.
	gw := gateway.New(logger, gateway.Config{
		APIKey:    cfg.Groq.APIKey,
		BaseURL:   cfg.Groq.BaseURL,
		Model:     cfg.Groq.Model,
		Timeout:   cfg.Groq.Timeout,
		CacheSize: cfg.Groq.CacheSize,
	})
	if gw.Enabled() {
		logger.Infof(ctx, "Model gateway enabled (model: %s)", cfg.Groq.Model)
	} else {
		logger.Warn(ctx, "Model gateway disabled, responses will carry error sentinels")
	}

	// 4. Domains
	transcriber := speech.NewTranscriber()

	chatHandler := chatHTTP.New(logger, chatUC.New(logger, gw, transcriber))
	grievanceHandler := grievanceHTTP.New(logger, grievanceUC.New(logger, gw))
	callHandler := caHTTP.New(logger, caUC.New(logger, gw))

	// 5. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		ChatHandler:      chatHandler,
		GrievanceHandler: grievanceHandler,
		CallHandler:      callHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
