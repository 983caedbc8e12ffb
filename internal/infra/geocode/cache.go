package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CacheStats carries the counters a cache reports to. Any field may be nil.
type CacheStats struct {
	Hits   prometheus.Counter
	Misses prometheus.Counter
}

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// WithCache wraps next with a TTL cache. Entries are evicted lazily on
// access; errors are never cached. The now func is injectable so tests can
// control expiry without sleeping. A nil now defaults to time.Now.
func WithCache[K comparable, V any](next Func[K, V], ttl time.Duration, now func() time.Time, stats *CacheStats) Func[K, V] {
	if now == nil {
		now = time.Now
	}

	var mu sync.Mutex
	entries := make(map[K]cacheEntry[V])

	return func(ctx context.Context, key K) (V, error) {
		mu.Lock()
		if entry, ok := entries[key]; ok {
			if now().Before(entry.expiresAt) {
				mu.Unlock()
				if stats != nil && stats.Hits != nil {
					stats.Hits.Inc()
				}

				return entry.value, nil
			}
			// Expired. Drop it and fall through to the source.
			delete(entries, key)
		}
		mu.Unlock()

		if stats != nil && stats.Misses != nil {
			stats.Misses.Inc()
		}

		value, err := next(ctx, key)
		if err != nil {
			return value, err
		}

		mu.Lock()
		entries[key] = cacheEntry[V]{value: value, expiresAt: now().Add(ttl)}
		mu.Unlock()

		return value, nil
	}
}
