package store

import "slices"

// Command is one optimistic mutation: the snapshot taken before the
// local update and the value produced by it. Commit and Rollback are
// pure transitions; the network outcome decides which one the caller
// applies.
type Command[T any] struct {
	Before []T
	After  []T
}

// Apply snapshots the store's current collection, applies update to a
// clone, and makes the result visible immediately. The caller dispatches
// the remote mutation only after Apply returns, so the UI always reflects
// the change with zero latency.
//
// Known limitation: if two Applies race on the same entity, the second
// command's Before already contains the first's optimistic change, so
// rolling back the second restores a value that still carries the first's
// (possibly also failed) edit. Callers that need stronger consistency
// follow up with a full Refresh.
func Apply[T any](s *Store[T], update func([]T) []T) Command[T] {
	before := slices.Clone(s.data)
	after := update(slices.Clone(s.data))
	s.data = after
	return Command[T]{Before: before, After: after}
}

// Commit confirms the optimistic value. No store change is required: the
// optimistic snapshot is already visible and is now treated as confirmed.
func (c Command[T]) Commit() []T { return c.After }

// Rollback returns the exact pre-mutation snapshot.
func (c Command[T]) Rollback() []T { return c.Before }

// RollbackInto restores the store to the command's Before snapshot and
// records err for the banner.
func RollbackInto[T any](s *Store[T], c Command[T], err error) {
	s.data = c.Before
	s.err = err
}
