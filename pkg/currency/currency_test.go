package currency_test

import (
	"testing"

	"github.com/moneta-go/moneta/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestCurrency_Fields(t *testing.T) {
	usd, err := currency.Lookup("USD")
	assert.NoError(t, err)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, "840", usd.Numeric)
	assert.Equal(t, "US Dollar", usd.Name)
	assert.Contains(t, usd.Countries, "UNITED STATES")
	assert.Contains(t, usd.Countries, "PUERTO RICO")
}

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "XYZ", currency.XYZ.String())
}

func TestCurrency_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    currency.Currency
		b    currency.Currency
		want bool
	}{
		{
			name: "same code, different metadata",
			a:    currency.Currency{Code: "XYZ", Name: "Default currency"},
			b:    currency.Currency{Code: "XYZ", Name: "Something else", Numeric: "001"},
			want: true,
		},
		{
			name: "different code",
			a:    currency.Currency{Code: "XYZ"},
			b:    currency.Currency{Code: "USD"},
			want: false,
		},
		{
			name: "registry entries",
			a:    currency.XYZ,
			b:    currency.USD,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
