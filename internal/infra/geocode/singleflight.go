package geocode

import (
	"context"
	"sync"
)

// WithSingleFlight wraps next so that while one call is executing, any
// concurrent call fails fast with ErrRequestInFlight instead of queueing.
func WithSingleFlight[K comparable, V any](next Func[K, V]) Func[K, V] {
	var mu sync.Mutex
	inFlight := false

	return func(ctx context.Context, key K) (V, error) {
		mu.Lock()
		if inFlight {
			mu.Unlock()
			var zero V

			return zero, ErrRequestInFlight
		}
		inFlight = true
		mu.Unlock()

		defer func() {
			mu.Lock()
			inFlight = false
			mu.Unlock()
		}()

		return next(ctx, key)
	}
}
