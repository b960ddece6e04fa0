// Package currency defines the Currency value type and the registry that
// resolves ISO 4217 alphabetic and numeric codes to currency metadata.
package currency

// Currency identifies a currency and carries its descriptive metadata.
// Identity is the three-letter code alone; the remaining fields are
// informational and do not participate in equality.
type Currency struct {
	Code      string   `json:"code" validate:"required,len=3,alpha,uppercase"` // e.g. "USD"
	Numeric   string   `json:"numeric" validate:"omitempty,numeric"`           // ISO numeric code, e.g. "840"
	Name      string   `json:"name"`                                           // e.g. "US Dollar"
	Countries []string `json:"countries"`                                      // countries using this currency
}

// Equal reports whether both currencies share the same code.
func (c Currency) Equal(other Currency) bool {
	return c.Code == other.Code
}

// IsZero reports whether the currency is the uninitialized zero value.
func (c Currency) IsZero() bool {
	return c.Code == ""
}

func (c Currency) String() string {
	return c.Code
}
