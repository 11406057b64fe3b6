package presenter

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when a locale cannot be parsed
const DefaultLocale = "en-US"

// compactUnits are the suffixes used by Compact, largest first
var compactUnits = []struct {
	suffix string
	size   float64
}{
	{"T", 1e12},
	{"B", 1e9},
	{"M", 1e6},
	{"K", 1e3},
}

// Formatter renders engine numbers as display strings for one locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter creates a Formatter for a BCP-47 locale.
// Unparseable locales fall back to en-US.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Locale returns the resolved locale tag
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency formats a whole-dollar amount, e.g. "$1,234,568" or "-$950"
func (f *Formatter) Currency(v float64) string {
	rounded := round(v, 0)
	abs := rounded.Abs().IntPart()
	s := "$" + f.printer.Sprint(number.Decimal(abs))
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// Percent formats a percentage with one decimal, e.g. "+6.4%" or "-12.5%"
func (f *Formatter) Percent(v float64) string {
	rounded := round(v, 1)
	s := f.oneDecimal(rounded.Abs()) + "%"
	switch {
	case rounded.IsPositive():
		return "+" + s
	case rounded.IsNegative():
		return "-" + s
	default:
		return s
	}
}

// Compact abbreviates large amounts, e.g. "$1.2M" or "3.4K" without symbol
func (f *Formatter) Compact(v float64, symbol bool) string {
	prefix := ""
	if symbol {
		prefix = "$"
	}

	rounded := round(v, 0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs := math.Abs(finiteOrZero(v))

	for i, unit := range compactUnits {
		if abs < unit.size {
			continue
		}
		scaled := round(abs/unit.size, 1)
		// 999.96K rounds to 1000.0K; show it as 1.0M instead
		if i > 0 && scaled.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
			unit = compactUnits[i-1]
			scaled = round(abs/unit.size, 1)
		}
		return sign + prefix + f.oneDecimal(scaled) + unit.suffix
	}

	return sign + prefix + f.printer.Sprint(number.Decimal(rounded.Abs().IntPart()))
}

func (f *Formatter) oneDecimal(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
}

// round rounds half away from zero
func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(finiteOrZero(v)).Round(places)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
