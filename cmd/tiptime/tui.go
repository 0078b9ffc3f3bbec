package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tiptime/internal/logger"
	"github.com/alexisbeaulieu97/tiptime/internal/tui"
)

func newTUICmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tip calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	return cmd
}

func runTUI(cmd *cobra.Command, app *AppContext) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	log := logger.Discard()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		log, err = app.NewLogger(f)
		if err != nil {
			return err
		}
	}

	calc, err := app.Calculator("", "")
	if err != nil {
		log.Error(err, "formatter setup failed")
		return err
	}

	log.WithFields(map[string]any{
		"locale":   calc.Formatter().Locale().String(),
		"currency": calc.Formatter().Currency(),
	}).Info("starting calculator")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return tui.Run(ctx, tui.Options{
		Calculator:        calc,
		Logger:            log,
		DefaultTipPercent: cfg.TipPercent,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
}
