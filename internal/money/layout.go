package money

import "golang.org/x/text/language"

const (
	nbsp       = "\u00a0"
	narrowNBSP = "\u202f"
)

// layout describes how one locale writes a currency amount.
type layout struct {
	tag         language.Tag
	currency    string // ISO code the locale uses natively
	symbol      string // symbol for the native currency
	decimal     string
	group       string
	spacing     string // between symbol and digits
	symbolAfter bool
	minGrouping int // integer digits needed before grouping kicks in
}

// The first entry is the fallback when nothing matches.
var layouts = []layout{
	{tag: language.AmericanEnglish, currency: "USD", symbol: "$", decimal: ".", group: ",", minGrouping: 4},
	{tag: language.BritishEnglish, currency: "GBP", symbol: "£", decimal: ".", group: ",", minGrouping: 4},
	{tag: language.MustParse("en-CA"), currency: "CAD", symbol: "$", decimal: ".", group: ",", minGrouping: 4},
	{tag: language.MustParse("en-AU"), currency: "AUD", symbol: "$", decimal: ".", group: ",", minGrouping: 4},
	{tag: language.MustParse("de-DE"), currency: "EUR", symbol: "€", decimal: ",", group: ".", spacing: nbsp, symbolAfter: true, minGrouping: 4},
	{tag: language.MustParse("de-CH"), currency: "CHF", symbol: "CHF", decimal: ".", group: "’", spacing: nbsp, minGrouping: 4},
	{tag: language.MustParse("fr-FR"), currency: "EUR", symbol: "€", decimal: ",", group: narrowNBSP, spacing: nbsp, symbolAfter: true, minGrouping: 4},
	{tag: language.MustParse("es-ES"), currency: "EUR", symbol: "€", decimal: ",", group: ".", spacing: nbsp, symbolAfter: true, minGrouping: 5},
	{tag: language.MustParse("it-IT"), currency: "EUR", symbol: "€", decimal: ",", group: ".", spacing: nbsp, symbolAfter: true, minGrouping: 4},
	{tag: language.MustParse("nl-NL"), currency: "EUR", symbol: "€", decimal: ",", group: ".", spacing: nbsp, minGrouping: 4},
	{tag: language.MustParse("pt-BR"), currency: "BRL", symbol: "R$", decimal: ",", group: ".", spacing: nbsp, minGrouping: 4},
	{tag: language.Japanese, currency: "JPY", symbol: "¥", decimal: ".", group: ",", minGrouping: 4},
}

// Symbols used when a locale formats a currency other than its own.
// Dollar and yen signs are ambiguous across locales, so those fall back to
// the ISO code.
var foreignSymbols = map[string]string{
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
	"ILS": "₪",
	"VND": "₫",
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return tags
}

// SupportedLocales lists the locales with a dedicated layout.
func SupportedLocales() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.tag.String()
	}
	return names
}

func layoutFor(tag language.Tag) layout {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(layouts) {
		return layouts[0]
	}
	return layouts[index]
}

func (l layout) symbolFor(code string) string {
	if code == l.currency {
		return l.symbol
	}
	if symbol, ok := foreignSymbols[code]; ok {
		return symbol
	}
	return code
}
