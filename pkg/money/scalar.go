package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type scalarKind uint8

const (
	scalarInvalid scalarKind = iota
	scalarExact
	scalarFloat
)

// Scalar is a tagged numeric operand for multiplication, division and
// percentage operations. The tag records whether the value originated from a
// binary float, so the consuming operation can emit the matching deprecation
// notice. The zero value is invalid and is rejected by every operation.
type Scalar struct {
	kind  scalarKind
	value decimal.Decimal
}

// Exact wraps an exact decimal scalar.
func Exact(d decimal.Decimal) Scalar {
	return Scalar{kind: scalarExact, value: d}
}

// ExactInt wraps an integer scalar.
func ExactInt(i int64) Scalar {
	return Scalar{kind: scalarExact, value: decimal.NewFromInt(i)}
}

// ExactString parses a decimal string into an exact scalar.
func ExactString(s string) (Scalar, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: scalar %q: %v", ErrInvalidOperation, s, err)
	}
	return Scalar{kind: scalarExact, value: d}, nil
}

// Float converts a binary float to a scalar through its shortest decimal
// string representation, avoiding binary rounding artifacts. The scalar is
// tagged as float-derived; operations consuming it succeed but emit a
// deprecation notice.
func Float(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("%w: scalar %v is not representable as a decimal", ErrInvalidOperation, f)
	}
	return Scalar{kind: scalarFloat, value: decimal.NewFromFloat(f)}, nil
}

// Decimal returns the exact decimal value of the scalar.
func (s Scalar) Decimal() decimal.Decimal {
	return s.value
}

func (s Scalar) isFloat() bool {
	return s.kind == scalarFloat
}

func (s Scalar) validate(op string) error {
	if s.kind == scalarInvalid {
		return fmt.Errorf("%w: %s with uninitialized scalar", ErrInvalidOperation, op)
	}
	return nil
}
