package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The operations below are defined over Value rather than Money so that
// results keep the concrete type of the money operand (see Value). The
// operand dispatch of each operation is fixed by its signature: money+money,
// money×scalar, money÷scalar, money÷money as a plain ratio, scalar%money as
// a percentage. Combinations outside these signatures (money×money,
// money%money, money+scalar) do not type-check.

var oneHundred = decimal.NewFromInt(100)

// Add returns a+b. Both operands must share a currency.
func Add(a, b Value) (Value, error) {
	if err := requireOperands("add", a, b); err != nil {
		return nil, err
	}
	if !a.Currency().Equal(b.Currency()) {
		return nil, &CurrencyMismatchError{Op: "add", Left: a.Currency().Code, Right: b.Currency().Code}
	}
	return a.WithAmount(a.Amount().Add(b.Amount())), nil
}

// Sub returns a-b. Both operands must share a currency.
func Sub(a, b Value) (Value, error) {
	if err := requireOperands("subtract", a, b); err != nil {
		return nil, err
	}
	if !a.Currency().Equal(b.Currency()) {
		return nil, &CurrencyMismatchError{Op: "subtract", Left: a.Currency().Code, Right: b.Currency().Code}
	}
	return a.WithAmount(a.Amount().Sub(b.Amount())), nil
}

// Mul returns v×k in v's currency. Multiplication commutes; there is no
// separate reflected form. A float-derived scalar succeeds but emits a
// deprecation notice.
func Mul(v Value, k Scalar) (Value, error) {
	if err := requireOperands("multiply", v); err != nil {
		return nil, err
	}
	if err := k.validate("multiply"); err != nil {
		return nil, err
	}
	if k.isFloat() {
		deprecated(warnMulFloat)
	}
	return v.WithAmount(v.Amount().Mul(k.value)), nil
}

// Div returns v÷k in v's currency. A float-derived scalar succeeds but emits
// a deprecation notice.
func Div(v Value, k Scalar) (Value, error) {
	if err := requireOperands("divide", v); err != nil {
		return nil, err
	}
	if err := k.validate("divide"); err != nil {
		return nil, err
	}
	if k.value.IsZero() {
		return nil, fmt.Errorf("%w: division by zero", ErrInvalidOperation)
	}
	if k.isFloat() {
		deprecated(warnDivFloat)
	}
	return v.WithAmount(v.Amount().Div(k.value)), nil
}

// Ratio returns the plain decimal ratio a÷b. Dividing money by money yields
// a dimensionless number, not money. Both operands must share a currency.
func Ratio(a, b Value) (decimal.Decimal, error) {
	if err := requireOperands("divide", a, b); err != nil {
		return decimal.Zero, err
	}
	if !a.Currency().Equal(b.Currency()) {
		return decimal.Zero, &CurrencyMismatchError{Op: "divide", Left: a.Currency().Code, Right: b.Currency().Code}
	}
	if b.Amount().IsZero() {
		return decimal.Zero, fmt.Errorf("%w: division by zero", ErrInvalidOperation)
	}
	return a.Amount().Div(b.Amount()), nil
}

// Percent returns k percent of v, i.e. v×k÷100, in v's currency. A
// float-derived percentage succeeds but emits a deprecation notice.
func Percent(k Scalar, v Value) (Value, error) {
	if err := requireOperands("percent", v); err != nil {
		return nil, err
	}
	if err := k.validate("percent"); err != nil {
		return nil, err
	}
	if k.isFloat() {
		deprecated(warnPercentFloat)
	}
	return v.WithAmount(v.Amount().Mul(k.value).Div(oneHundred)), nil
}

// Neg returns v with the amount negated.
func Neg(v Value) Value {
	return v.WithAmount(v.Amount().Neg())
}

// Abs returns v with the amount's absolute value.
func Abs(v Value) Value {
	return v.WithAmount(v.Amount().Abs())
}

// Sum accumulates the values left to right. All elements must share a
// currency; the result keeps the first element's concrete type. Summing no
// values is rejected because there is no currency to attach to the identity.
func Sum[T Value](values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("%w: sum of no money values", ErrInvalidOperation)
	}
	total := values[0].Amount()
	cur := values[0].Currency()
	for _, v := range values[1:] {
		if !v.Currency().Equal(cur) {
			return zero, &CurrencyMismatchError{Op: "add", Left: cur.Code, Right: v.Currency().Code}
		}
		total = total.Add(v.Amount())
	}
	return values[0].WithAmount(total).(T), nil
}

func requireOperands(op string, vs ...Value) error {
	for _, v := range vs {
		if v == nil {
			return fmt.Errorf("%w: %s with nil operand", ErrInvalidOperation, op)
		}
	}
	return nil
}

// Convenience methods for the common concrete case.

// Add returns m+other in m's currency.
func (m Money) Add(other Money) (Money, error) {
	v, err := Add(m, other)
	if err != nil {
		return Money{}, err
	}
	return v.(Money), nil
}

// Sub returns m-other in m's currency.
func (m Money) Sub(other Money) (Money, error) {
	v, err := Sub(m, other)
	if err != nil {
		return Money{}, err
	}
	return v.(Money), nil
}

// Mul returns m×k.
func (m Money) Mul(k Scalar) (Money, error) {
	v, err := Mul(m, k)
	if err != nil {
		return Money{}, err
	}
	return v.(Money), nil
}

// Div returns m÷k.
func (m Money) Div(k Scalar) (Money, error) {
	v, err := Div(m, k)
	if err != nil {
		return Money{}, err
	}
	return v.(Money), nil
}

// Neg returns m with the amount negated.
func (m Money) Neg() Money {
	return Neg(m).(Money)
}

// Abs returns m with the amount's absolute value.
func (m Money) Abs() Money {
	return Abs(m).(Money)
}
