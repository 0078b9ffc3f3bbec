package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	tiperrors "github.com/alexisbeaulieu97/tiptime/pkg/errors"
)

func mustFormatter(t *testing.T, locale string, opts ...Option) *Formatter {
	t.Helper()

	f, err := NewFormatter(language.MustParse(locale), opts...)
	require.NoError(t, err)
	return f
}

func TestFormatAmericanEnglish(t *testing.T) {
	t.Parallel()

	f := mustFormatter(t, "en-US")

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"whole amount gets two decimals", "2", "$2.00"},
		{"zero", "0", "$0.00"},
		{"thousands are grouped", "1234.5", "$1,234.50"},
		{"millions are grouped", "1234567.891", "$1,234,567.89"},
		{"three digits stay ungrouped", "999.99", "$999.99"},
		{"negative amounts lead with a minus", "-2", "-$2.00"},
		{"half rounds to even downward", "1.005", "$1.00"},
		{"half rounds to even upward", "1.015", "$1.02"},
		{"tiny negative rounds to plain zero", "-0.001", "$0.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatOtherLocales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   string
		amount   string
		expected string
	}{
		{"en-GB", "2", "£2.00"},
		{"de-DE", "1234.5", "1.234,50" + nbsp + "€"},
		{"fr-FR", "1234.5", "1" + narrowNBSP + "234,50" + nbsp + "€"},
		{"es-ES", "1234.5", "1234,50" + nbsp + "€"},
		{"es-ES", "12345", "12.345,00" + nbsp + "€"},
		{"nl-NL", "2", "€" + nbsp + "2,00"},
		{"pt-BR", "1500", "R$" + nbsp + "1.500,00"},
		{"ja-JP", "1234.5", "¥1,234"},
		{"ja-JP", "1235.5", "¥1,236"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.locale+"/"+tt.amount, func(t *testing.T) {
			t.Parallel()
			f := mustFormatter(t, tt.locale)
			require.Equal(t, tt.expected, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatterResolvesCurrencyFromLocale(t *testing.T) {
	t.Parallel()

	require.Equal(t, "USD", mustFormatter(t, "en-US").Currency())
	require.Equal(t, "GBP", mustFormatter(t, "en-GB").Currency())
	require.Equal(t, "EUR", mustFormatter(t, "de-DE").Currency())

	yen := mustFormatter(t, "ja-JP")
	require.Equal(t, "JPY", yen.Currency())
	require.Equal(t, int32(0), yen.Scale())
}

func TestWithCurrencyOverridesLocaleCurrency(t *testing.T) {
	t.Parallel()

	euro := mustFormatter(t, "en-US", WithCurrency("eur"))
	require.Equal(t, "EUR", euro.Currency())
	require.Equal(t, "€2.00", euro.Format(decimal.NewFromInt(2)))

	canadian := mustFormatter(t, "en-US", WithCurrency("CAD"))
	require.Equal(t, "CAD"+nbsp+"2.00", canadian.Format(decimal.NewFromInt(2)))

	blank := mustFormatter(t, "en-GB", WithCurrency("  "))
	require.Equal(t, "GBP", blank.Currency())
}

func TestWithCurrencyRejectsUnknownCode(t *testing.T) {
	t.Parallel()

	_, err := NewFormatter(language.AmericanEnglish, WithCurrency("NOPE"))
	require.Error(t, err)

	var formatErr *tiperrors.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "NOPE", formatErr.Currency)
}

func TestUnsupportedLocaleFallsBackToFirstLayout(t *testing.T) {
	t.Parallel()

	f := mustFormatter(t, "sw-KE")
	require.Equal(t, language.AmericanEnglish, f.Locale())
	require.Equal(t, "KES", f.Currency())
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	locales := SupportedLocales()
	require.Equal(t, "en-US", locales[0])
	require.Contains(t, locales, "de-DE")
	require.Contains(t, locales, "ja")
}
