package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tiptime/internal/tip"
)

type calcOptions struct {
	Amount     string
	TipPercent string
	RoundUp    bool
	Locale     string
	Currency   string
	Strict     bool
}

func newCalcCmd(app *AppContext) *cobra.Command {
	opts := calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the tip for a bill",
		Long: `Print the tip for a bill as currency text.

Unparsable numbers count as zero unless --strict is set. --tip and
--round-up fall back to tip_percent and round_up from the config file.`,
		Example: `  tiptime calc --amount 42.50
  tiptime calc -a 10 -t 15 --round-up
  tiptime calc -a 1234.5 --locale de-DE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCalcOptions(opts); err != nil {
				return err
			}
			return runCalc(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Amount, "amount", "a", "", "Bill amount")
	cmd.Flags().StringVarP(&opts.TipPercent, "tip", "t", "", "Tip percentage (default from config, 15 if unset)")
	cmd.Flags().BoolVarP(&opts.RoundUp, "round-up", "r", false, "Round the tip up to a whole currency unit")
	cmd.Flags().StringVar(&opts.Locale, "locale", "", "Locale for formatting, e.g. en-US (default from config or environment)")
	cmd.Flags().StringVar(&opts.Currency, "currency", "", "ISO 4217 currency code (default from locale)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject unparsable numbers instead of treating them as zero")

	return cmd
}

func runCalc(cmd *cobra.Command, app *AppContext, opts calcOptions) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	log, err := app.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	req := tip.Request{TipPercent: cfg.TipPercent, RoundUp: cfg.RoundUp}
	if cmd.Flags().Changed("round-up") {
		req.RoundUp = opts.RoundUp
	}

	req.Amount, err = parseNumber("amount", opts.Amount, opts.Strict)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tip") {
		req.TipPercent, err = parseNumber("tip", opts.TipPercent, opts.Strict)
		if err != nil {
			return err
		}
	}

	calc, err := app.Calculator(opts.Locale, opts.Currency)
	if err != nil {
		log.Error(err, "formatter setup failed")
		return err
	}

	res := calc.Compute(req)
	log.WithFields(map[string]any{
		"amount":      req.Amount,
		"tip_percent": req.TipPercent,
		"round_up":    req.RoundUp,
		"locale":      calc.Formatter().Locale().String(),
		"currency":    calc.Formatter().Currency(),
		"tip":         res.Tip.String(),
	}).Debug("tip calculated")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return err
}

func parseNumber(field, text string, strict bool) (float64, error) {
	if strict {
		return tip.ParseInputStrict(field, text)
	}
	return tip.ParseInput(text), nil
}
