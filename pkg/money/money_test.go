package money_test

import (
	"math"
	"testing"

	"github.com/moneta-go/moneta/pkg/currency"
	"github.com/moneta-go/moneta/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneMillion = decimal.NewFromInt(1000000)

func mustParse(t *testing.T, amount, code string) money.Money {
	t.Helper()
	m, err := money.Parse(amount, code)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	m := money.New(oneMillion, currency.USD)
	assert.True(t, m.Amount().Equal(oneMillion))
	assert.True(t, m.Currency().Equal(currency.USD))
}

func TestParse_StringCurrencyCode(t *testing.T) {
	m := mustParse(t, "1000000", "usd")
	assert.True(t, m.Amount().Equal(oneMillion))
	assert.True(t, m.Currency().Equal(currency.USD))
}

func TestParse_DefaultCurrency(t *testing.T) {
	m := mustParse(t, "1000000", "")
	assert.True(t, m.Amount().Equal(oneMillion))
	assert.True(t, m.Currency().Equal(money.DefaultCurrency()))
}

func TestParse_UnknownCurrency(t *testing.T) {
	_, err := money.Parse("1", "ZZZ")
	assert.ErrorIs(t, err, currency.ErrCurrencyDoesNotExist)
}

func TestParse_BadAmount(t *testing.T) {
	_, err := money.Parse("one million", "USD")
	assert.ErrorIs(t, err, money.ErrInvalidOperation)
}

func TestFromFloat64(t *testing.T) {
	m, err := money.FromFloat64(1000000.0, currency.USD)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(oneMillion))

	// The float is read through its decimal string representation, so the
	// intended value survives rather than the nearest binary fraction.
	m, err = money.FromFloat64(111.33, currency.USD)
	require.NoError(t, err)
	assert.Equal(t, "111.33 USD", m.String())
}

func TestFromFloat64_NonFinite(t *testing.T) {
	_, err := money.FromFloat64(math.NaN(), currency.USD)
	assert.ErrorIs(t, err, money.ErrInvalidOperation)

	_, err = money.FromFloat64(math.Inf(1), currency.USD)
	assert.ErrorIs(t, err, money.ErrInvalidOperation)
}

func TestString_CanonicalForm(t *testing.T) {
	m := money.New(oneMillion, currency.USD)
	assert.Equal(t, "1000000 USD", m.String())

	// Trailing zero padding is insignificant.
	m1 := mustParse(t, "2.000", "PLN")
	m2 := mustParse(t, "2.000000", "PLN")
	assert.Equal(t, "2 PLN", m1.String())
	assert.Equal(t, m1.String(), m2.String())
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "2.000", "PLN")
	b := mustParse(t, "2.00", "PLN")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	assert.False(t, a.Equal(mustParse(t, "2.001", "PLN")))
	assert.False(t, a.Equal(mustParse(t, "2", "USD")))
}

func TestEqual_IsTotal(t *testing.T) {
	m := money.New(decimal.Zero, currency.USD)
	assert.False(t, m.Equal(nil))
}

func TestKey_EqualValuesShareKeys(t *testing.T) {
	a := mustParse(t, "2.000", "PLN")
	b := mustParse(t, "2.000000", "PLN")
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	seen := map[string]int{}
	seen[a.Key()]++
	seen[b.Key()]++
	assert.Len(t, seen, 1)
}

func TestZero(t *testing.T) {
	z := money.Zero(currency.USD)
	assert.True(t, z.IsZero())
	assert.False(t, z.IsNegative())
	assert.Equal(t, "0 USD", z.String())
}
