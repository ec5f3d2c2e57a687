package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glimmerhq/storyshowcase/internal/app"
	"github.com/glimmerhq/storyshowcase/internal/config"
	"github.com/glimmerhq/storyshowcase/internal/logging"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		logging.New(logging.LevelError).Error("Failed to initialize application",
			logging.WithField("error", err.Error()))
		os.Exit(1)
	}
	logger := application.Logger

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- application.Run()
	}()

	select {
	case <-sigChan:
		logger.Info("Shutting down...")
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", logging.WithField("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", logging.WithField("error", err.Error()))
		os.Exit(1)
	}
}
