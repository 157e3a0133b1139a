// package change_queue provides a bounded, versioned append-only log of
// change records for resources with multiple independent consumers. Where a
// take-and-reset dirty state is destructive and single-consumer, a
// ChangeQueue lets any number of consumers poll at their own rate: each holds
// a last-known version and asks for the changes pushed after it, with
// explicit loss detection when history has been evicted.
package change_queue

import "slices"

// MaxChangeQueueSize is the number of pushes a ChangeQueue retains. A
// consumer falling more than MaxChangeQueueSize pushes behind observes
// HasLostChanges and must treat the whole resource as dirty.
const MaxChangeQueueSize = 20

type entry[T any] struct {
	version int
	change  T
}

// ChangeQueue is a bounded FIFO log of (version, change) pairs with a
// monotonically increasing version counter. It is not thread-safe: pushes
// happen on a hot mutation path and must stay cheap, so callers either
// confine the queue to one goroutine or wrap it in the owning resource's
// lock.
type ChangeQueue[T any] struct {
	version int
	entries []entry[T]
}

// NewChangeQueue creates an empty ChangeQueue at version 0.
//
// Returns:
//   - *ChangeQueue[T]: the new queue
func NewChangeQueue[T any]() *ChangeQueue[T] {
	return &ChangeQueue[T]{
		entries: make([]entry[T], 0, MaxChangeQueueSize),
	}
}

// Push appends a change, increments the version, and evicts the oldest entry
// once the queue holds more than MaxChangeQueueSize pushes.
//
// Parameters:
//   - change: the change record to append
//
// Returns:
//   - int: the new version, suitable as a watermark for consumers
func (q *ChangeQueue[T]) Push(change T) int {
	q.version++
	q.entries = append(q.entries, entry[T]{version: q.version, change: change})
	if len(q.entries) > MaxChangeQueueSize {
		q.entries = slices.Delete(q.entries, 0, 1)
	}
	return q.version
}

// Version returns the current version: the number of pushes (plus clears)
// performed so far.
func (q *ChangeQueue[T]) Version() int {
	return q.version
}

// LatestChange returns the most recently pushed change.
//
// Returns:
//   - T: the latest change, or the zero value if none is retained
//   - bool: true if a change was retained
func (q *ChangeQueue[T]) LatestChange() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}
	return q.entries[len(q.entries)-1].change, true
}

// ChangesSince returns, in push order, every retained change with a version
// greater than lastKnownVersion. The result is empty when the consumer is not
// stale. When HasLostChanges reports true the returned slice is incomplete —
// consumers must check for loss before replaying.
//
// Parameters:
//   - lastKnownVersion: the consumer's watermark
//
// Returns:
//   - []T: the retained changes newer than the watermark
func (q *ChangeQueue[T]) ChangesSince(lastKnownVersion int) []T {
	if lastKnownVersion >= q.version {
		return nil
	}
	var out []T
	for _, e := range q.entries {
		if e.version > lastKnownVersion {
			out = append(out, e.change)
		}
	}
	return out
}

// IsStale reports whether changes have been pushed past the consumer's
// watermark.
//
// Parameters:
//   - lastKnownVersion: the consumer's watermark
//
// Returns:
//   - bool: true if the current version is greater than the watermark
func (q *ChangeQueue[T]) IsStale(lastKnownVersion int) bool {
	return q.version > lastKnownVersion
}

// HasLostChanges reports whether at least one change relevant to the consumer
// was evicted before it could be observed: the queue is non-empty and the
// oldest retained version is more than one past the watermark. This is the
// signal to fall back from incremental replay to treating the whole resource
// as dirty.
//
// Parameters:
//   - lastKnownVersion: the consumer's watermark
//
// Returns:
//   - bool: true if relevant history was evicted
func (q *ChangeQueue[T]) HasLostChanges(lastKnownVersion int) bool {
	if len(q.entries) == 0 {
		return false
	}
	return q.entries[0].version > lastKnownVersion+1
}

// Clear drops every retained entry and bumps the version once, so consumers
// behind the new version correctly observe that they missed everything.
//
// Returns:
//   - int: the new version
func (q *ChangeQueue[T]) Clear() int {
	q.entries = q.entries[:0]
	q.version++
	return q.version
}
