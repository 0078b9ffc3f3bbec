// Package money renders decimal amounts as locale-aware currency text.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	tiperrors "github.com/alexisbeaulieu97/tiptime/pkg/errors"
)

// Option customizes a Formatter at construction time.
type Option func(*options)

type options struct {
	currency string
}

// WithCurrency overrides the currency derived from the locale. An empty code
// keeps the locale's currency.
func WithCurrency(code string) Option {
	return func(o *options) {
		o.currency = strings.ToUpper(strings.TrimSpace(code))
	}
}

// Formatter formats amounts for one locale and currency. It is immutable and
// safe for concurrent use.
type Formatter struct {
	locale language.Tag
	layout layout
	unit    currency.Unit
	symbol  string
	spacing string
	scale   int32
}

// NewFormatter builds a Formatter for the given locale.
func NewFormatter(locale language.Tag, opts ...Option) (*Formatter, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := layoutFor(locale)

	unit, err := resolveCurrency(locale, l, cfg.currency)
	if err != nil {
		return nil, err
	}

	scale, _ := currency.Standard.Rounding(unit)

	symbol := l.symbolFor(unit.String())
	spacing := l.spacing
	if symbol == unit.String() && spacing == "" {
		// ISO codes never touch the digits.
		spacing = nbsp
	}

	return &Formatter{
		locale:  l.tag,
		layout:  l,
		unit:    unit,
		symbol:  symbol,
		spacing: spacing,
		scale:   int32(scale),
	}, nil
}

func resolveCurrency(locale language.Tag, l layout, override string) (currency.Unit, error) {
	if override != "" {
		unit, err := currency.ParseISO(override)
		if err != nil {
			return currency.Unit{}, tiperrors.NewFormatError(override, err)
		}
		return unit, nil
	}

	if unit, confidence := currency.FromTag(locale); confidence != language.No {
		return unit, nil
	}

	unit, err := currency.ParseISO(l.currency)
	if err != nil {
		return currency.Unit{}, tiperrors.NewFormatError(l.currency, err)
	}
	return unit, nil
}

// Locale reports the layout locale the formatter settled on.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Currency reports the ISO 4217 code being formatted.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Scale reports the number of fraction digits the currency uses.
func (f *Formatter) Scale() int32 {
	return f.scale
}

// Format renders amount as currency text. Amounts are rounded half-even to
// the currency's scale.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.RoundBank(f.scale)
	digits := rounded.Abs().StringFixed(f.scale)
	whole, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	if !f.layout.symbolAfter {
		b.WriteString(f.symbol)
		b.WriteString(f.spacing)
	}
	b.WriteString(f.group(whole))
	if fraction != "" {
		b.WriteString(f.layout.decimal)
		b.WriteString(fraction)
	}
	if f.layout.symbolAfter {
		b.WriteString(f.spacing)
		b.WriteString(f.symbol)
	}
	return b.String()
}

func (f *Formatter) group(whole string) string {
	if len(whole) < f.layout.minGrouping {
		return whole
	}

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(f.layout.group)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
