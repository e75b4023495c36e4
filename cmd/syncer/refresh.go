package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bills_fetcher/internal/domain"
)

var (
	refreshMode string
	refreshKind string
)

var refreshPeriodCmd = &cobra.Command{
	Use:   "refresh-period <cuatrenio>",
	Short: "Refresh every legislatura of a cuatrenio, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefreshPeriod,
}

var refreshSubPeriodCmd = &cobra.Command{
	Use:   "refresh-sub-period <cuatrenio> <legislatura>",
	Short: "Refresh a single legislatura",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefreshSubPeriod,
}

func init() {
	for _, cmd := range []*cobra.Command{refreshPeriodCmd, refreshSubPeriodCmd} {
		cmd.Flags().StringVar(&refreshMode, "mode", string(domain.ModeFull), "what to refresh: list-only, detail-only or full")
		cmd.Flags().StringVar(&refreshKind, "kind", "", "bills to refresh: ley or acto-legislativo (default sync.kind)")
		rootCmd.AddCommand(cmd)
	}
}

func runRefreshPeriod(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseMode(refreshMode)
	if err != nil {
		return err
	}

	a, err := newApp(refreshKind)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	stats, err := a.sync.RefreshPeriod(ctx, args[0], mode)
	for _, s := range stats {
		a.logger.Info("legislatura refreshed",
			"legislatura", s.Legislatura,
			"kind", s.Kind,
			"processed", s.Processed(),
			"skipped", s.Skipped,
		)
	}
	if err != nil {
		return fmt.Errorf("refresh cuatrenio %s: %w", args[0], err)
	}
	return nil
}

func runRefreshSubPeriod(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseMode(refreshMode)
	if err != nil {
		return err
	}

	a, err := newApp(refreshKind)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	if _, err := a.sync.RefreshLegislatura(ctx, args[0], args[1], mode); err != nil {
		return fmt.Errorf("refresh legislatura %s/%s: %w", args[0], args[1], err)
	}
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
