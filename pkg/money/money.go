// Package money provides an immutable, currency-aware exact-decimal money
// value with arithmetic, comparison and canonical string conversion.
// Arithmetic never touches binary floating point: amounts are
// decimal.Decimal throughout, and float inputs are admitted only through
// their decimal string representation.
package money

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/moneta-go/moneta/pkg/currency"
	"github.com/shopspring/decimal"
)

// Value is the contract shared by Money and any type that embeds it.
// WithAmount is the "same concrete type, new amount" factory: every
// arithmetic and unary operation builds its result through the left (or, for
// reflected forms, the money-typed) operand's WithAmount, so results keep
// the operand's concrete type. Types embedding Money must provide their own
// WithAmount for that to hold.
type Value interface {
	Amount() decimal.Decimal
	Currency() currency.Currency
	WithAmount(amount decimal.Decimal) Value
}

// Money pairs an exact decimal amount with a currency. The zero value is
// zero units of the process default currency. Money is immutable; operations
// return new values.
type Money struct {
	amount decimal.Decimal
	cur    currency.Currency
}

var defaultCurrency atomic.Pointer[currency.Currency]

func init() {
	c := currency.XYZ
	defaultCurrency.Store(&c)
}

// DefaultCurrency returns the process-wide default currency used when a
// money value is constructed without an explicit currency.
func DefaultCurrency() currency.Currency {
	return *defaultCurrency.Load()
}

// SetDefaultCurrency installs the process-wide default currency. Intended to
// be called once during initialization, before money values are constructed.
func SetDefaultCurrency(c currency.Currency) {
	defaultCurrency.Store(&c)
}

// New builds a money value from an exact decimal amount. A zero-value
// currency selects the process default.
func New(amount decimal.Decimal, cur currency.Currency) Money {
	if cur.IsZero() {
		cur = DefaultCurrency()
	}
	return Money{amount: amount, cur: cur}
}

// FromInt builds a money value from an integer amount.
func FromInt(amount int64, cur currency.Currency) Money {
	return New(decimal.NewFromInt(amount), cur)
}

// FromFloat64 builds a money value from a binary float by converting through
// the float's shortest decimal string representation, so 111.33 becomes
// exactly 111.33 rather than the nearest binary fraction. Non-finite inputs
// are rejected.
func FromFloat64(amount float64, cur currency.Currency) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: amount %v is not representable as a decimal", ErrInvalidOperation, amount)
	}
	return New(decimal.NewFromFloat(amount), cur), nil
}

// Parse builds a money value from a decimal amount string and a currency
// code. The code is resolved case-insensitively against the default
// registry; an empty code selects the process default currency.
func Parse(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidOperation, amount, err)
	}
	cur, err := resolveCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d, cur: cur}, nil
}

// Zero returns zero units of the given currency.
func Zero(cur currency.Currency) Money {
	return New(decimal.Zero, cur)
}

func resolveCurrency(code string) (currency.Currency, error) {
	if code == "" {
		return DefaultCurrency(), nil
	}
	return currency.Lookup(code)
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() currency.Currency {
	if m.cur.IsZero() {
		return DefaultCurrency()
	}
	return m.cur
}

// WithAmount returns a money value in the same currency with a new amount.
func (m Money) WithAmount(amount decimal.Decimal) Value {
	return Money{amount: amount, cur: m.Currency()}
}

// Equal reports whether other is a money value with the same currency code
// and the same numeric amount. Trailing zero padding is insignificant: 2.000
// equals 2.00. Equal is total; a nil operand is simply not equal.
func (m Money) Equal(other Value) bool {
	if other == nil {
		return false
	}
	return m.Currency().Equal(other.Currency()) && m.amount.Equal(other.Amount())
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is negative.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Key returns the canonical form "<amount> <code>" with insignificant
// trailing zeros stripped. Values that compare Equal produce identical keys,
// so Key is suitable as a map key.
func (m Money) Key() string {
	return canonicalAmount(m.amount) + " " + m.Currency().Code
}

// String renders the canonical debug form, e.g. "1000000 USD". Locale-aware
// rendering lives in the l10n package.
func (m Money) String() string {
	return m.Key()
}

// canonicalAmount strips insignificant trailing zeros so 2.000 and 2.000000
// render identically as 2.
func canonicalAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
