// Package staged implements the snapshot pair behind every independently
// savable settings section: an initial (last confirmed saved) value and a
// working (currently edited) value. A section is dirty exactly when the two
// snapshots differ structurally, so reverting an edit by hand makes the
// section clean again.
package staged

import (
	"context"
	"reflect"
	"sync"

	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"
)

// ErrNotDirty is returned by Save when the working copy equals the initial
// snapshot; a save button in that state is a no-op.
var ErrNotDirty = errors.New("staged: section has no changes to save")

// Section tracks one savable group of fields. Sections are independent
// values; saving or discarding one can never touch another.
type Section[T any] struct {
	mu      sync.Mutex
	initial T
	working T
	loading bool
}

// New hydrates a section from a freshly loaded value. Both snapshots are set
// together, so a section is never dirty right after load.
func New[T any](value T) *Section[T] {
	return &Section[T]{
		initial: clone(value),
		working: clone(value),
	}
}

// Value returns a copy of the working snapshot. Mutating the returned value
// does not touch the section.
func (s *Section[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.working)
}

// Initial returns a copy of the last confirmed saved value.
func (s *Section[T]) Initial() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.initial)
}

// Set replaces the working copy. The caller's value is deep-cloned so later
// mutations through the caller's reference cannot alias the snapshot.
func (s *Section[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.working = clone(value)
}

// Update applies an in-place mutation to the working copy.
func (s *Section[T]) Update(mutate func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := clone(s.working)
	mutate(&next)
	s.working = next
}

// IsDirty reports whether the working copy differs structurally from the
// initial snapshot. Nested maps and slices are compared deeply; editing a
// field and editing it back yields a clean section.
func (s *Section[T]) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !reflect.DeepEqual(s.initial, s.working)
}

// Loading reports whether a Save is currently in flight.
func (s *Section[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Save persists the working copy through persist. A clean section returns
// ErrNotDirty without calling persist. On success the value persist echoes
// back becomes the new initial and working snapshot. On failure both
// snapshots stay untouched and the section stays dirty. The loading flag is
// cleared on every path.
func (s *Section[T]) Save(ctx context.Context, persist func(context.Context, T) (T, error)) error {
	s.mu.Lock()
	if reflect.DeepEqual(s.initial, s.working) {
		s.mu.Unlock()

		return ErrNotDirty
	}
	s.loading = true
	snapshot := clone(s.working)
	s.mu.Unlock()

	saved, err := persist(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		return errors.Wrap(err, "failed to save section")
	}

	// The server-echoed value wins over the locally edited one.
	s.initial = clone(saved)
	s.working = clone(saved)

	return nil
}

// Discard rolls the working copy back to the initial snapshot.
func (s *Section[T]) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.working = clone(s.initial)
}

// clone deep-copies a snapshot value. Values that cannot be deep-copied
// (channels, funcs) are returned as-is; section payloads are plain data.
func clone[T any](value T) T {
	copied, err := copystructure.Copy(value)
	if err != nil {
		return value
	}

	cloned, ok := copied.(T)
	if !ok {
		return value
	}

	return cloned
}
