// Package tip computes gratuities and renders them as currency text.
package tip

import (
	"math"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/tiptime/internal/money"
)

// DefaultTipPercent applies when a caller does not choose a percentage.
const DefaultTipPercent = 15.0

var hundred = decimal.NewFromInt(100)

// Request holds the inputs of a single tip calculation.
type Request struct {
	Amount     float64
	TipPercent float64
	RoundUp    bool
}

// Result is a calculated tip in both numeric and display form.
type Result struct {
	Tip  decimal.Decimal
	Text string
}

// Tip returns amount * tipPercent / 100, raised to the next whole unit when
// roundUp is set. Negative inputs are not rejected.
func Tip(amount, tipPercent decimal.Decimal, roundUp bool) decimal.Decimal {
	tip := amount.Mul(tipPercent).Div(hundred)
	if roundUp {
		tip = tip.Ceil()
	}
	return tip
}

// Calculator formats tips with a fixed currency formatter. The zero value is
// not usable; construct one with NewCalculator.
type Calculator struct {
	formatter *money.Formatter
}

// NewCalculator binds a Calculator to formatter.
func NewCalculator(formatter *money.Formatter) *Calculator {
	return &Calculator{formatter: formatter}
}

// Formatter exposes the formatter the calculator renders with.
func (c *Calculator) Formatter() *money.Formatter {
	return c.formatter
}

// Compute runs the calculation described by req.
func (c *Calculator) Compute(req Request) Result {
	tip := Tip(fromFloat(req.Amount), fromFloat(req.TipPercent), req.RoundUp)
	return Result{Tip: tip, Text: c.formatter.Format(tip)}
}

// Format returns the tip as currency text.
func (c *Calculator) Format(amount, tipPercent float64, roundUp bool) string {
	return c.Compute(Request{Amount: amount, TipPercent: tipPercent, RoundUp: roundUp}).Text
}

var (
	defaultOnce       sync.Once
	defaultCalculator *Calculator
)

// Default returns a calculator for the locale found in the environment.
func Default() *Calculator {
	defaultOnce.Do(func() {
		formatter, err := money.NewFormatter(money.DetectLocale(os.Getenv))
		if err != nil {
			// unreachable without a currency override
			panic(err)
		}
		defaultCalculator = NewCalculator(formatter)
	})
	return defaultCalculator
}

// CalculateTip formats tipPercent percent of amount using the environment's
// locale. Non-finite inputs count as zero.
func CalculateTip(amount, tipPercent float64, roundUp bool) string {
	return Default().Format(amount, tipPercent, roundUp)
}

// CalculateDefaultTip is CalculateTip at DefaultTipPercent.
func CalculateDefaultTip(amount float64, roundUp bool) string {
	return CalculateTip(amount, DefaultTipPercent, roundUp)
}

func fromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
