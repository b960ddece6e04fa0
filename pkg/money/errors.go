package money

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation indicates that an operation received an operand it
// cannot handle at all (non-finite float, zero divisor, empty sum, nil
// operand).
var ErrInvalidOperation = errors.New("invalid operation")

// ErrCurrencyMismatch indicates that two money values with different
// currencies were combined under an operation requiring matching currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrMoneyComparison indicates that an ordering comparison was attempted
// between operands for which ordering is undefined. It is kept distinct from
// ErrCurrencyMismatch so callers can catch "undefined ordering" separately
// from "undefined arithmetic".
var ErrMoneyComparison = errors.New("money comparison undefined")

// CurrencyMismatchError reports the operation and both currency codes
// involved in a cross-currency arithmetic attempt.
type CurrencyMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrCurrencyMismatch, e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// ComparisonError reports an ordering comparison whose result is undefined,
// either because the currencies differ or because an operand is not a money
// value.
type ComparisonError struct {
	Left  string
	Right string
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("%v: cannot order %s against %s", ErrMoneyComparison, e.Left, e.Right)
}

func (e *ComparisonError) Unwrap() error {
	return ErrMoneyComparison
}
