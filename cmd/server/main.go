// Command server runs the Niney Life Pickr smart server.
//
// @title Niney Life Pickr Smart Server API
// @version 1.0.0
// @description ML/AI backend service providing predictions, model metadata and recommendations
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nineylabs/smart-server/internal/catalog"
	"github.com/nineylabs/smart-server/internal/config"
	"github.com/nineylabs/smart-server/internal/handler"
	"github.com/nineylabs/smart-server/internal/logging"
	"github.com/nineylabs/smart-server/internal/model"
	"github.com/nineylabs/smart-server/internal/router"
	"github.com/nineylabs/smart-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// Wire dependencies
	svc := service.NewService(catalog.New(), model.NewClient())
	h := handler.NewHandler(svc, cfg)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(h, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	printBanner(cfg)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	fmt.Println("\n📦 Shutting down Smart Server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
		srv.Close()
	}

	logging.Info().Msg("server stopped")
}

func printBanner(cfg *config.Config) {
	fmt.Printf(`
╔════════════════════════════════════════════╗
║   Niney Life Pickr Smart Server            ║
║   ML/AI Backend Service                    ║
╠════════════════════════════════════════════╣
║   Status: ✅ Running                       ║
║   Port: %d
║   Host: %s
║   Environment: %s
╚════════════════════════════════════════════╝

Server is running at http://%s
`, cfg.Server.Port, cfg.Server.Host, cfg.App.Environment, cfg.Addr())

	if url := cfg.DocsURL(); url != "" {
		fmt.Printf("API Docs: %s\n", url)
	}
	fmt.Println("Press Ctrl+C to stop")
}
