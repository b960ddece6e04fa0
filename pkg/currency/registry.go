package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrCurrencyDoesNotExist indicates that a lookup did not match any
// registered currency.
var ErrCurrencyDoesNotExist = errors.New("currency does not exist")

var validate = validator.New()

// Registry maps alphabetic and numeric currency codes to Currency metadata.
// It is intended to be seeded once at startup; lookups after seeding are safe
// for concurrent use because no write path remains.
type Registry struct {
	byCode    map[string]Currency
	byNumeric map[string]Currency
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCode:    make(map[string]Currency),
		byNumeric: make(map[string]Currency),
	}
}

// Register validates the currency definition and inserts it into both the
// code and numeric indices. Registering an already-known code overwrites the
// previous entry; seeding is last-write-wins, not a transactional store.
func (r *Registry) Register(c Currency) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid currency definition %q: %w", c.Code, err)
	}
	r.byCode[c.Code] = c
	if c.Numeric != "" {
		r.byNumeric[normalizeNumeric(c.Numeric)] = c
	}
	return nil
}

// MustRegister is Register for static seed tables; it panics on an invalid
// definition.
func (r *Registry) MustRegister(c Currency) Currency {
	if err := r.Register(c); err != nil {
		panic(err)
	}
	return c
}

// Lookup resolves a three-letter code, case-insensitively.
func (r *Registry) Lookup(code string) (Currency, error) {
	c, ok := r.byCode[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrCurrencyDoesNotExist, code)
	}
	return c, nil
}

// LookupNumeric resolves an ISO numeric code given as a string. Leading
// zeros are ignored, so "840" and "0840" resolve the same entry.
func (r *Registry) LookupNumeric(numeric string) (Currency, error) {
	c, ok := r.byNumeric[normalizeNumeric(numeric)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: numeric %q", ErrCurrencyDoesNotExist, numeric)
	}
	return c, nil
}

// LookupNumericInt resolves an ISO numeric code given as an integer.
func (r *Registry) LookupNumericInt(numeric int) (Currency, error) {
	return r.LookupNumeric(strconv.Itoa(numeric))
}

// All returns a snapshot of every registered currency.
func (r *Registry) All() []Currency {
	out := make([]Currency, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	return out
}

// normalizeNumeric strips leading zeros so numeric codes compare the same
// whether supplied zero-padded ("036") or as a bare integer rendering ("36").
func normalizeNumeric(numeric string) string {
	trimmed := strings.TrimLeft(numeric, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Default is the process-wide registry, seeded from the ISO 4217 table at
// package initialization.
var Default = NewRegistry()

// Lookup resolves a code against the default registry.
func Lookup(code string) (Currency, error) {
	return Default.Lookup(code)
}

// LookupNumeric resolves a numeric code string against the default registry.
func LookupNumeric(numeric string) (Currency, error) {
	return Default.LookupNumeric(numeric)
}

// LookupNumericInt resolves an integer numeric code against the default registry.
func LookupNumericInt(numeric int) (Currency, error) {
	return Default.LookupNumericInt(numeric)
}
