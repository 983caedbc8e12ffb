package geocode

import (
	"context"
	"sync"
)

// Searcher serializes lookups so only the newest one counts. Starting a new
// search cancels the context of the one still running, and a result arriving
// for an already-replaced search is discarded with ErrSuperseded. This keeps
// a fast follow-up query from being overwritten by a slow earlier one.
type Searcher[K comparable, V any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	next   Func[K, V]
}

// NewSearcher wraps next with supersede semantics.
func NewSearcher[K comparable, V any](next Func[K, V]) *Searcher[K, V] {
	return &Searcher[K, V]{next: next}
}

// Search runs the lookup. If a newer Search starts before this one returns,
// this one's context is canceled and its result is dropped.
func (s *Searcher[K, V]) Search(ctx context.Context, key K) (V, error) {
	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	value, err := s.next(ctx, key)

	s.mu.Lock()
	superseded := s.seq != mySeq
	if !superseded {
		s.cancel = nil
		cancel()
	}
	s.mu.Unlock()

	if superseded {
		var zero V

		return zero, ErrSuperseded
	}

	return value, err
}
