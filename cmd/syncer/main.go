package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "syncer",
	Short: "Crawl Senate bills and keep the database in sync",
	Long: `syncer reads the bill listings of the Colombian Senate website for a
cuatrenio or one of its legislaturas, captures each bill's detail page and
reconciles everything against PostgreSQL.

Examples:
  # Refresh every legislatura of a cuatrenio
  syncer refresh-period 2018-2022

  # Refresh only the listing of one legislatura
  syncer refresh-sub-period 2018-2022 2020-2021 --mode list-only

  # Keep the configured cuatrenios fresh
  syncer schedule

  # Export a cuatrenio as CSV
  syncer export 2018-2022 --format csv --output bills.csv`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
