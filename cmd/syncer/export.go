package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bills_fetcher/internal/report"
	"bills_fetcher/internal/storage/postgres"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <cuatrenio>",
	Short: "Write the stored bills of a cuatrenio as CSV or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(report.FormatCSV), "output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	rows, err := postgres.NewBillStore(a.db).ListForExport(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("load bills: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(w, format, rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for legislatura, byState := range report.Summary(rows) {
		a.logger.Info("exported legislatura", "legislatura", legislatura, "states", byState)
	}
	return nil
}
