package tip

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/tiptime/internal/money"
)

func newUSCalculator(t *testing.T) *Calculator {
	t.Helper()

	formatter, err := money.NewFormatter(language.AmericanEnglish)
	require.NoError(t, err)
	return NewCalculator(formatter)
}

// Runs sequentially so the environment is in place before Default is built.
func TestCalculateTipUsesEnvironmentLocale(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")

	require.Equal(t, "$2.00", CalculateTip(10.00, 20.00, false))
	require.Equal(t, "$2.00", CalculateTip(10.00, 15.00, true))
	require.Equal(t, "$0.00", CalculateTip(0, 20, false))
	require.Equal(t, "$1.50", CalculateDefaultTip(10.00, false))
	require.Equal(t, "$2.00", CalculateDefaultTip(10.00, true))
}

func TestCalculatorFormat(t *testing.T) {
	t.Parallel()

	calc := newUSCalculator(t)

	tests := []struct {
		name       string
		amount     float64
		tipPercent float64
		roundUp    bool
		expected   string
	}{
		{"20 percent tip no round up", 10.00, 20.00, false, "$2.00"},
		{"15 percent tip rounded up", 10.00, 15.00, true, "$2.00"},
		{"zero bill", 0, 20, false, "$0.00"},
		{"exact whole tip is not bumped", 20.00, 15.00, true, "$3.00"},
		{"fractional cents round half even", 10.05, 15.00, false, "$1.51"},
		{"large bill is grouped", 12345.67, 18, false, "$2,222.22"},
		{"negative bill passes through", -10, 20, false, "-$2.00"},
		{"NaN counts as zero", math.NaN(), 20, false, "$0.00"},
		{"infinite percent counts as zero", 10, math.Inf(1), true, "$0.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, calc.Format(tt.amount, tt.tipPercent, tt.roundUp))
		})
	}
}

func TestComputeReturnsRoundedValue(t *testing.T) {
	t.Parallel()

	calc := newUSCalculator(t)

	res := calc.Compute(Request{Amount: 33.33, TipPercent: 15, RoundUp: true})
	require.True(t, decimal.NewFromInt(5).Equal(res.Tip), "got %s", res.Tip)
	require.Equal(t, "$5.00", res.Text)

	plain := calc.Compute(Request{Amount: 33.33, TipPercent: 15})
	require.True(t, decimal.RequireFromString("4.9995").Equal(plain.Tip), "got %s", plain.Tip)
	require.Equal(t, "$5.00", plain.Text)
}

func TestTipAvoidsBinaryFloatDrift(t *testing.T) {
	t.Parallel()

	// 0.07 * 100 is 7.000000000000001 in float64.
	tip := Tip(decimal.NewFromFloat(100), decimal.NewFromFloat(7), true)
	require.True(t, decimal.NewFromInt(7).Equal(tip), "got %s", tip)
}

func TestTipProperties(t *testing.T) {
	t.Parallel()

	amounts := []string{"0", "0.01", "1", "9.99", "10", "33.33", "100", "1234.56"}
	percents := []string{"0", "1", "10", "12.5", "15", "18", "20", "25", "100"}

	for i, a := range amounts {
		amount := decimal.RequireFromString(a)
		for j, p := range percents {
			percent := decimal.RequireFromString(p)

			plain := Tip(amount, percent, false)
			rounded := Tip(amount, percent, true)

			require.False(t, plain.IsNegative(), "tip(%s, %s) negative", a, p)
			require.True(t, rounded.GreaterThanOrEqual(plain), "round up lowered tip(%s, %s)", a, p)
			require.True(t, rounded.Equal(rounded.Truncate(0)), "round up left fraction on tip(%s, %s)", a, p)

			if i > 0 {
				prev := Tip(decimal.RequireFromString(amounts[i-1]), percent, false)
				require.True(t, plain.GreaterThanOrEqual(prev), "not monotone in amount at %s, %s", a, p)
			}
			if j > 0 {
				prev := Tip(amount, decimal.RequireFromString(percents[j-1]), false)
				require.True(t, plain.GreaterThanOrEqual(prev), "not monotone in percent at %s, %s", a, p)
			}
		}
	}
}

func TestDefaultTipPercent(t *testing.T) {
	t.Parallel()

	require.Equal(t, 15.0, DefaultTipPercent)
}
