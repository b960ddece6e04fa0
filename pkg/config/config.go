// Package config loads the process-wide defaults for money construction and
// formatting from the environment.
package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/moneta-go/moneta/pkg/currency"
	"github.com/moneta-go/moneta/pkg/l10n"
	"github.com/moneta-go/moneta/pkg/money"
	"github.com/spf13/viper"
)

// Config holds the process defaults.
type Config struct {
	DefaultCurrencyCode string
	DefaultLocale       string
}

// Load reads configuration from environment variables. It looks for a .env
// file first.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONETA_DEFAULT_CURRENCY", currency.XYZ.Code)
	viper.SetDefault("MONETA_DEFAULT_LOCALE", l10n.Fallback)
	viper.AutomaticEnv()

	cfg := &Config{
		DefaultCurrencyCode: viper.GetString("MONETA_DEFAULT_CURRENCY"),
		DefaultLocale:       viper.GetString("MONETA_DEFAULT_LOCALE"),
	}
	return cfg, nil
}

// Apply resolves the configured currency code against the default registry
// and installs the process defaults. An unknown code keeps the built-in
// default rather than failing startup.
func Apply(cfg *Config) error {
	cur, err := currency.Lookup(cfg.DefaultCurrencyCode)
	if err != nil {
		log.Printf("Warning: unknown default currency %q, keeping %s\n", cfg.DefaultCurrencyCode, money.DefaultCurrency().Code)
	} else {
		money.SetDefaultCurrency(cur)
	}
	l10n.SetDefaultLocale(cfg.DefaultLocale)
	return nil
}
