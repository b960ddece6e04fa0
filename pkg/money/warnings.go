package money

import (
	"log/slog"
	"sync/atomic"
)

// Deprecation messages emitted when float-derived scalars reach arithmetic.
const (
	warnMulFloat     = "Multiplying Money instances with floats is deprecated"
	warnDivFloat     = "Dividing Money instances by floats is deprecated"
	warnPercentFloat = "Calculating percentages of Money instances using floats is deprecated"
)

// DeprecationHandler receives non-fatal deprecation notices. The notice is a
// side channel: the operation that emitted it still succeeds.
type DeprecationHandler func(message string)

var deprecationHandler atomic.Value

func init() {
	deprecationHandler.Store(DeprecationHandler(func(message string) {
		slog.Warn(message)
	}))
}

// SetDeprecationHandler installs the process-wide deprecation sink. Passing
// nil restores the default handler, which logs at Warn level. Intended to be
// called once during initialization.
func SetDeprecationHandler(h DeprecationHandler) {
	if h == nil {
		h = func(message string) { slog.Warn(message) }
	}
	deprecationHandler.Store(h)
}

func deprecated(message string) {
	deprecationHandler.Load().(DeprecationHandler)(message)
}
