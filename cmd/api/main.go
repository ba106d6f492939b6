package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-session-manager/config"
	"chat-session-manager/internal/chat/delivery/httpapi"
	"chat-session-manager/internal/chat/usecase"
	"chat-session-manager/internal/httpserver"
	"chat-session-manager/internal/middleware"
	"chat-session-manager/pkg/askapi"
	"chat-session-manager/pkg/authapi"
	"chat-session-manager/pkg/log"
)

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

	logger.Info(ctx, "Starting Chat Session Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Remote service: %s", cfg.Remote.BaseURL)

	// 3. Credential provider
	authClient := authapi.NewClient(cfg.Auth.BaseURL)
	provider := authapi.NewProvider(authClient, cfg.Auth.VerifyCacheTTL)

	// 4. Chat domain
	askClient := askapi.NewClient(cfg.Remote.BaseURL)
	chatUC := usecase.New(logger, provider, askClient, usecase.Config{
		Fallback: authapi.Credentials{
			Username: cfg.Auth.FallbackUsername,
			Password: cfg.Auth.FallbackPassword,
		},
		MaxHistory: cfg.Chat.MaxHistory,
	})
	chatHandler := httpapi.New(logger, chatUC, provider)

	// 5. HTTP Server
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
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
