package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Personal finance tracker: transactions, budgets, savings goals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, exportCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openTracker wires config -> backend -> store -> tracker. The caller
// owns closing the returned store.
func openTracker(ctx context.Context, cfg *config.Config, logger *log.Logger) (*services.Tracker, *storage.Store, error) {
	kv, err := backend.NewFactory(logger).Open(backend.Config{
		Type:         backend.Type(cfg.Backend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		return nil, nil, err
	}
	store := storage.New(kv, logger)
	return services.NewTracker(ctx, store, logger), store, nil
}

func newLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.Config{Level: cfg.SlogLevel(), Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}
