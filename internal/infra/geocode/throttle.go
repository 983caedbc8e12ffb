package geocode

import (
	"context"
	"sync"
	"time"
)

type pendingCall[K comparable, V any] struct {
	ctx   context.Context
	key   K
	done  chan struct{}
	value V
	err   error
}

type throttle[K comparable, V any] struct {
	mu       sync.Mutex
	next     Func[K, V]
	interval time.Duration
	lastFire time.Time
	timer    *time.Timer
	pending  *pendingCall[K, V]
}

// WithThrottle wraps next so that at most one call per interval reaches it.
// The first call in a quiet period executes immediately. Calls arriving
// inside the cooldown window are collapsed: only the newest waits for the
// trailing edge, and every caller it displaced fails with ErrSuperseded.
func WithThrottle[K comparable, V any](next Func[K, V], interval time.Duration) Func[K, V] {
	t := &throttle[K, V]{next: next, interval: interval}

	return t.call
}

func (t *throttle[K, V]) call(ctx context.Context, key K) (V, error) {
	t.mu.Lock()

	now := time.Now()
	if t.pending == nil && now.Sub(t.lastFire) >= t.interval {
		// Leading edge: outside the cooldown window, execute immediately.
		t.lastFire = now
		t.mu.Unlock()

		return t.next(ctx, key)
	}

	// Inside the window. Displace whatever was queued before us.
	if t.pending != nil {
		t.pending.err = ErrSuperseded
		close(t.pending.done)
	}

	pending := &pendingCall[K, V]{ctx: ctx, key: key, done: make(chan struct{})}
	t.pending = pending

	if t.timer == nil {
		delay := t.interval - now.Sub(t.lastFire)
		if delay < 0 {
			delay = 0
		}
		t.timer = time.AfterFunc(delay, t.fireTrailing)
	}
	t.mu.Unlock()

	select {
	case <-pending.done:
		return pending.value, pending.err
	case <-ctx.Done():
		var zero V

		return zero, ctx.Err()
	}
}

// fireTrailing runs at the end of the cooldown window and executes the
// newest queued call, if any.
func (t *throttle[K, V]) fireTrailing() {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	t.lastFire = time.Now()
	t.mu.Unlock()

	if pending == nil {
		return
	}

	pending.value, pending.err = t.next(pending.ctx, pending.key)
	close(pending.done)
}
