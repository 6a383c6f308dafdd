package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/priyanka7rc/laya/config"
	_ "github.com/priyanka7rc/laya/docs" // Swagger docs
	"github.com/priyanka7rc/laya/internal/httpserver"
	"github.com/priyanka7rc/laya/internal/store"
	"github.com/priyanka7rc/laya/pkg/log"
	"github.com/priyanka7rc/laya/pkg/suggest"
)

// @title       Laya API
// @description Personal productivity API: brain-dump task capture, recipes, meal planning, and weekly grocery lists.
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

	logger.Info(ctx, "Starting Laya...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Category suggestion client (optional)
	var suggester suggest.ISuggest
	if cfg.Suggest.Enabled && cfg.Suggest.APIKey != "" {
		client := suggest.NewClient(suggest.Config{
			APIKey:  cfg.Suggest.APIKey,
			BaseURL: cfg.Suggest.BaseURL,
			Model:   cfg.Suggest.Model,
		})
		suggester = client
		logger.Infof(ctx, "Category suggestion enabled (model=%s)", client.Model())
	} else {
		logger.Info(ctx, "Category suggestion disabled, keyword matching only")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Cfg:         cfg,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Suggester:   suggester,
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
