package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	apphttp "fintrack/internal/http"
	"fintrack/internal/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tracker API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger := newLogger(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tracker, store, err := openTracker(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		srv := apphttp.NewServer(":"+cfg.Port, tracker, logger)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("Starting fintrack server",
				log.FieldOperation, log.OpStartup,
				"port", cfg.Port,
				log.FieldBackend, cfg.Backend)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			return err
		}
		logger.Info("Server stopped gracefully")
		return nil
	},
}
