package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jishu-admin/config"
	_ "jishu-admin/docs" // Swagger docs
	"jishu-admin/internal/httpserver"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/log"
)

// @title       Jishu Admin API
// @description Admin gateway for the Jishu test-prep platform: users, courses, subjects, posts, comments and transactions.
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

	logger.Info(ctx, "Starting Jishu Admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Upstream URL: %s", cfg.Upstream.URL)

	// 3. Upstream client
	jishuClient := jishu.NewClient(cfg.Upstream.URL, cfg.Upstream.AccessToken, cfg.Upstream.Timeout)

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		JishuClient: jishuClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
