package region

// BufferRange is an immutable 1D interval [offset, offset+length) over a flat
// element or byte buffer. Unlike Region it has no maximum extent: flat
// buffers are not rectangular, so the owning resource clamps lengths against
// its declared capacity before a range is recorded.
type BufferRange struct {
	offset, length int
}

// NewBufferRange creates a BufferRange covering [offset, offset+length).
// A negative offset is clamped to 0.
//
// Parameters:
//   - offset: the first element covered by the range
//   - length: the number of elements covered, must be at least 1
//
// Returns:
//   - BufferRange: the new range
//   - error: ErrInvalidDimension if length < 1
func NewBufferRange(offset, length int) (BufferRange, error) {
	if length < 1 {
		return BufferRange{}, ErrInvalidDimension
	}
	return BufferRange{offset: max(0, offset), length: length}, nil
}

// Offset returns the first element covered by the range.
func (b BufferRange) Offset() int { return b.offset }

// Length returns the number of elements covered by the range.
func (b BufferRange) Length() int { return b.length }

// Merge returns the union interval [min(offsets), max(ends)). A nil other is
// the identity: b itself is returned. Merge is idempotent, commutative, and
// associative.
//
// Parameters:
//   - other: the range to merge with, or nil
//
// Returns:
//   - BufferRange: the union interval
func (b BufferRange) Merge(other *BufferRange) BufferRange {
	if other == nil {
		return b
	}
	start := min(b.offset, other.offset)
	end := max(b.offset+b.length, other.offset+other.length)
	return BufferRange{offset: start, length: end - start}
}
