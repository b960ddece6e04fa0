package money

// Ordering is defined only between money values denominated in the same
// currency. Anything else reports ComparisonError rather than a
// CurrencyMismatchError, so callers can tell "undefined ordering" apart from
// "undefined arithmetic". Equality, by contrast, is total and lives on
// Money.Equal.

// Compare returns -1, 0 or 1 ordering a against b by amount.
func Compare(a, b Value) (int, error) {
	if a == nil || b == nil {
		return 0, &ComparisonError{Left: describe(a), Right: describe(b)}
	}
	if !a.Currency().Equal(b.Currency()) {
		return 0, &ComparisonError{Left: a.Currency().Code, Right: b.Currency().Code}
	}
	return a.Amount().Cmp(b.Amount()), nil
}

// LessThan reports whether a < b.
func LessThan(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

// LessThanOrEqual reports whether a <= b.
func LessThanOrEqual(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c <= 0, err
}

// GreaterThan reports whether a > b.
func GreaterThan(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c > 0, err
}

// GreaterThanOrEqual reports whether a >= b.
func GreaterThanOrEqual(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c >= 0, err
}

func describe(v Value) string {
	if v == nil {
		return "non-money value"
	}
	return v.Currency().Code
}
