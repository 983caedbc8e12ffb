// Package geocode implements the Nominatim-backed geocoder together with the
// request-shaping decorators (cache, throttle, single-flight) applied in
// front of it. The decorators are generic so forward and reverse lookups
// reuse the same machinery with their own key types.
package geocode

import (
	"context"

	"github.com/pkg/errors"
)

// Func is a geocoding lookup keyed by K. Decorators wrap a Func and return
// another Func with the same signature.
type Func[K comparable, V any] func(ctx context.Context, key K) (V, error)

var (
	// ErrSuperseded is returned to a caller whose pending request was
	// replaced by a newer one before it could execute.
	ErrSuperseded = errors.New("geocode: request superseded by a newer one")

	// ErrRequestInFlight is returned when a lookup is rejected because an
	// earlier one has not finished yet.
	ErrRequestInFlight = errors.New("geocode: a request is already in flight")
)
