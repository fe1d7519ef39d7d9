package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyKozhin/user-profiles-backend/internal/api"
	"github.com/SergeyKozhin/user-profiles-backend/internal/config"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profiles API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := newService(ctx)
	if err != nil {
		return err
	}

	go service.Warmup(ctx)

	handler, err := api.NewApi(logger, service)
	if err != nil {
		return fmt.Errorf("init api: %w", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		return fmt.Errorf("init server logger: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + config.Port(),
		Handler:           handler,
		ErrorLog:          errLogger,
		ReadHeaderTimeout: 10 * time.Second,
	}

	closer.Bind(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Failed shutting down server", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port(), "favorites_backend", config.FavoritesBackend())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "err", err)
			closer.Exit(1)
		}
	}()

	closer.Hold()
	return nil
}
