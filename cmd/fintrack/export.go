package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/config"
	"fintrack/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracker data as json, csv or a text report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger := newLogger(cfg)

		tracker, store, err := openTracker(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		var data []byte
		switch exportFormat {
		case "json":
			data, err = export.JSON(tracker.Snapshot())
		case "csv":
			data, err = export.CSV(tracker.Transactions())
		case "report":
			data = export.Report(tracker.Snapshot(), time.Now())
		default:
			return fmt.Errorf("unknown format %q: must be json, csv or report", exportFormat)
		}
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(exportOutput, data, 0644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json, csv or report")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, - for stdout")
}
