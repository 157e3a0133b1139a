package dirty

import (
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// BufferState is the dirty descriptor for a simple flat buffer: a single
// optional BufferRange over the buffer's elements, with no metadata flags.
// BufferState is immutable; MarkDirty and Merge return new values.
type BufferState struct {
	capacity int
	dirty    *region.BufferRange
}

// NewBufferState creates an empty BufferState for a buffer holding capacity
// elements.
//
// Parameters:
//   - capacity: the buffer's declared element count, must be at least 1
//
// Returns:
//   - BufferState: the empty state
//   - error: region.ErrInvalidDimension if capacity < 1
func NewBufferState(capacity int) (BufferState, error) {
	if capacity < 1 {
		return BufferState{}, region.ErrInvalidDimension
	}
	return BufferState{capacity: capacity}, nil
}

// Capacity returns the declared element count of the tracked buffer.
func (s BufferState) Capacity() int {
	return s.capacity
}

// MarkDirty returns a new state with [offset, offset+length) merged into the
// dirty range. The offset is clamped to [0, capacity-1] and the length is
// clamped so the range never extends past the declared capacity.
//
// Parameters:
//   - offset: the first changed element
//   - length: the number of changed elements, must be at least 1
//
// Returns:
//   - BufferState: the updated state
//   - error: region.ErrInvalidDimension if length < 1
func (s BufferState) MarkDirty(offset, length int) (BufferState, error) {
	if length < 1 {
		return BufferState{}, region.ErrInvalidDimension
	}
	offset = max(0, min(offset, s.capacity-1))
	length = min(length, s.capacity-offset)

	r, err := region.NewBufferRange(offset, length)
	if err != nil {
		return BufferState{}, err
	}
	merged := r.Merge(s.dirty)
	return BufferState{capacity: s.capacity, dirty: &merged}, nil
}

// Merge returns the pointwise union of s and other. Both states must
// describe a buffer of the same capacity.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - BufferState: the merged state
//   - error: region.ErrIncompatibleMerge if the capacities differ
func (s BufferState) Merge(other BufferState) (BufferState, error) {
	if other.capacity != s.capacity {
		return BufferState{}, region.ErrIncompatibleMerge
	}
	if other.dirty == nil {
		return s, nil
	}
	merged := other.dirty.Merge(s.dirty)
	return BufferState{capacity: s.capacity, dirty: &merged}, nil
}

// DirtyRange returns a copy of the dirty range, or nil if nothing is pending.
func (s BufferState) DirtyRange() *region.BufferRange {
	if s.dirty == nil {
		return nil
	}
	r := *s.dirty
	return &r
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s BufferState) Empty() bool {
	return s.dirty == nil
}
