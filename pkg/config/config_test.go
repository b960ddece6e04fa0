package config_test

import (
	"testing"

	"github.com/moneta-go/moneta/pkg/config"
	"github.com/moneta-go/moneta/pkg/currency"
	"github.com/moneta-go/moneta/pkg/l10n"
	"github.com/moneta-go/moneta/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "XYZ", cfg.DefaultCurrencyCode)
	assert.Equal(t, l10n.Fallback, cfg.DefaultLocale)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONETA_DEFAULT_CURRENCY", "USD")
	t.Setenv("MONETA_DEFAULT_LOCALE", "pl_PL")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.DefaultCurrencyCode)
	assert.Equal(t, "pl_PL", cfg.DefaultLocale)
}

func TestApply(t *testing.T) {
	t.Cleanup(func() {
		money.SetDefaultCurrency(currency.XYZ)
		l10n.SetDefaultLocale(l10n.Fallback)
	})

	err := config.Apply(&config.Config{DefaultCurrencyCode: "pln", DefaultLocale: "pl_PL"})
	require.NoError(t, err)
	assert.True(t, money.DefaultCurrency().Equal(currency.PLN))
	assert.Equal(t, "pl_PL", l10n.DefaultLocale())

	m, err := money.Parse("1000000", "")
	require.NoError(t, err)
	assert.Equal(t, "1 000 000,00 zł", l10n.FormatMoney(m))
}

func TestApply_UnknownCurrencyKeepsDefault(t *testing.T) {
	t.Cleanup(func() {
		money.SetDefaultCurrency(currency.XYZ)
		l10n.SetDefaultLocale(l10n.Fallback)
	})

	before := money.DefaultCurrency()
	err := config.Apply(&config.Config{DefaultCurrencyCode: "ZZZ", DefaultLocale: l10n.Fallback})
	require.NoError(t, err)
	assert.True(t, money.DefaultCurrency().Equal(before))
}
