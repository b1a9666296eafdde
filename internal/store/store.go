// Package store holds the client-side state machinery: one Store per
// remote resource collection, plus the optimistic-mutation command
// objects that keep local edits consistent with server outcomes.
//
// Stores are single-threaded by contract. All state transitions happen
// on the UI update loop; only Fetch, which touches no store state, may
// run on another goroutine.
package store

import (
	"context"
	"slices"
)

// FetchFunc loads a fresh snapshot of one resource collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Store caches the latest server-confirmed snapshot of one collection.
// Snapshots are replaced wholesale, never merged. A generation counter
// lets an owner discard completions that arrive after Cancel (e.g. the
// consuming view was popped); among live fetches the last response to
// arrive wins, which is a known race inherited from the protocol, not a
// bug to fix here.
type Store[T any] struct {
	fetch FetchFunc[T]

	data    []T
	loading bool
	err     error

	nextGen   int
	cancelGen int // generations at or below this are suppressed
}

// New creates an empty store for the given fetch function.
func New[T any](fetch FetchFunc[T]) *Store[T] {
	return &Store[T]{fetch: fetch}
}

// Data returns the currently visible snapshot.
func (s *Store[T]) Data() []T { return s.data }

// Loading reports whether a fetch is outstanding.
func (s *Store[T]) Loading() bool { return s.loading }

// Err returns the current error state, if any.
func (s *Store[T]) Err() error { return s.err }

// ClearErr dismisses the error banner.
func (s *Store[T]) ClearErr() { s.err = nil }

// SetErr records an error for the banner without touching the snapshot.
// Used by call sites whose failure path has nothing to roll back.
func (s *Store[T]) SetErr(err error) { s.err = err }

// Result carries one fetch completion back to the update loop.
type Result[T any] struct {
	Gen  int
	Data []T
	Err  error
}

// Begin marks the store loading and allocates a generation for the fetch
// about to be dispatched. Call on the update loop.
func (s *Store[T]) Begin() int {
	s.nextGen++
	s.loading = true
	s.err = nil
	return s.nextGen
}

// Fetch runs the load for a generation allocated by Begin. It reads no
// store state and is safe to call from a command goroutine.
func (s *Store[T]) Fetch(ctx context.Context, gen int) Result[T] {
	data, err := s.fetch(ctx)
	return Result[T]{Gen: gen, Data: data, Err: err}
}

// Resolve applies a fetch completion. Completions for cancelled
// generations are dropped; everything else applies in arrival order, so
// when two refreshes race the later arrival overwrites the earlier one.
// Returns false when the result was suppressed.
func (s *Store[T]) Resolve(r Result[T]) bool {
	if r.Gen <= s.cancelGen {
		return false
	}
	s.loading = false
	if r.Err != nil {
		s.err = r.Err
		return true
	}
	s.data = r.Data
	s.err = nil
	return true
}

// Cancel invalidates every outstanding fetch. The owning view calls this
// when it unmounts so a late completion cannot update dead state.
func (s *Store[T]) Cancel() {
	s.cancelGen = s.nextGen
	s.loading = false
}

// Replace swaps in a snapshot directly, bypassing the fetch path. Used
// by tests and by call sites that already hold fresh data.
func (s *Store[T]) Replace(data []T) {
	s.data = slices.Clone(data)
}
