// Package l10n renders money values according to locale conventions:
// thousands grouping, decimal separator and currency symbol placement. The
// locale and symbol tables are injected at construction and never mutated
// afterwards, so a Formatter is safe for concurrent use.
package l10n

import (
	"strings"
	"sync/atomic"

	"github.com/moneta-go/moneta/pkg/money"
)

// Style holds the numeric conventions of a locale.
type Style struct {
	DecimalPoint string
	Thousand     string
	GroupSize    int
}

// Symbol describes how a currency is written under a locale: the symbol
// text, whether it precedes the amount, and whether a space separates the
// two.
type Symbol struct {
	Text   string
	Prefix bool
	Space  bool
}

// Formatter renders money values using static locale and symbol tables.
type Formatter struct {
	fallback string
	locales  map[string]Style
	symbols  map[string]map[string]Symbol
}

// NewFormatter builds a formatter over the given tables. The fallback locale
// is used when a requested locale has no registered style; it must be a key
// of locales. The symbols table maps locale to currency code to symbol.
func NewFormatter(fallback string, locales map[string]Style, symbols map[string]map[string]Symbol) *Formatter {
	return &Formatter{fallback: fallback, locales: locales, symbols: symbols}
}

type options struct {
	locale        string
	decimalPlaces int
}

// Option adjusts a single Format call.
type Option func(*options)

// WithLocale selects the locale to render under.
func WithLocale(locale string) Option {
	return func(o *options) { o.locale = locale }
}

// WithDecimalPlaces sets the number of fractional digits. Zero omits the
// decimal separator entirely; negative values are treated as zero.
func WithDecimalPlaces(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.decimalPlaces = n
	}
}

// Format renders the value. Defaults: the process default locale and two
// decimal places. Display rounding is half to even; the stored amount is
// never modified. When no symbol is registered for the currency under the
// chosen locale, the raw currency code is rendered as a space-separated
// suffix.
func (f *Formatter) Format(v money.Value, opts ...Option) string {
	o := options{locale: DefaultLocale(), decimalPlaces: 2}
	for _, opt := range opts {
		opt(&o)
	}

	locale := o.locale
	style, ok := f.locales[locale]
	if !ok {
		locale = f.fallback
		style = f.locales[locale]
	}

	amount := v.Amount()
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixedBank(int32(o.decimalPlaces))

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	body := groupDigits(intPart, style.Thousand, style.GroupSize)
	if o.decimalPlaces > 0 {
		body += style.DecimalPoint + fracPart
	}

	code := v.Currency().Code
	sym, ok := f.symbols[locale][code]
	if !ok {
		sym = Symbol{Text: code, Prefix: false, Space: true}
	}

	sep := ""
	if sym.Space {
		sep = " "
	}
	var out string
	if sym.Prefix {
		out = sym.Text + sep + body
	} else {
		out = body + sep + sym.Text
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupDigits inserts the thousands separator into an unsigned integer
// digit string.
func groupDigits(digits, sep string, size int) string {
	if size <= 0 || sep == "" || len(digits) <= size {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % size
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

var defaultLocale atomic.Value

func init() {
	defaultLocale.Store(Fallback)
}

// DefaultLocale returns the process-wide default locale used when Format is
// called without WithLocale.
func DefaultLocale() string {
	return defaultLocale.Load().(string)
}

// SetDefaultLocale installs the process-wide default locale. Intended to be
// called once during initialization.
func SetDefaultLocale(locale string) {
	defaultLocale.Store(locale)
}

// FormatMoney renders the value with the default formatter and its seeded
// locale tables.
func FormatMoney(v money.Value, opts ...Option) string {
	return Default.Format(v, opts...)
}
