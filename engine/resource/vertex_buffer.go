package resource

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/engine/change_queue"
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// vertexBuffer is the implementation of the VertexBuffer interface.
type vertexBuffer struct {
	mu *sync.RWMutex

	id   uint64
	name string

	length int
	usage  wgpu.BufferUsage

	// changes has no single consumer: any number of backends replay it
	// against their own watermark. The queue itself is not thread-safe;
	// all access goes through mu.
	changes *change_queue.ChangeQueue[region.BufferRange]
}

// VertexBuffer is a mutable flat buffer resource (vertex or element data)
// whose changes are tracked through a versioned change queue rather than a
// destructive dirty slot, so multiple independent consumers can poll for
// changes at different rates without racing each other for the reset.
//
// A consumer keeps the version returned by its last sync and asks IsStale /
// HasLostChanges / ChangesSince against it. When changes were lost the
// consumer must fall back to re-uploading the whole buffer. Thread-safe.
type VertexBuffer interface {
	Resource

	// Length returns the declared element count of the buffer.
	Length() int

	// Usage returns the intended GPU usage flags for the buffer.
	//
	// Returns:
	//   - wgpu.BufferUsage: the usage flags
	Usage() wgpu.BufferUsage

	// MarkDataDirty records that [offset, offset+length) changed, clamped to
	// the declared element count, and publishes it on the change queue.
	//
	// Parameters:
	//   - offset: the first changed element
	//   - length: the number of changed elements, must be at least 1
	//
	// Returns:
	//   - int: the new queue version, usable as a consumer watermark
	//   - error: region.ErrInvalidDimension if length < 1
	MarkDataDirty(offset, length int) (int, error)

	// SetLength re-declares the buffer's element count. The change history
	// becomes meaningless against the new extent, so the queue is cleared and
	// the full new range is published: consumers that were mid-replay observe
	// lost changes and re-upload everything.
	//
	// Parameters:
	//   - length: the new element count, must be at least 1
	//
	// Returns:
	//   - int: the new queue version
	//   - error: region.ErrInvalidDimension if length < 1
	SetLength(length int) (int, error)

	// Version returns the change queue's current version.
	Version() int

	// LatestChange returns the most recently published range.
	//
	// Returns:
	//   - region.BufferRange: the latest range
	//   - bool: true if a range is retained
	LatestChange() (region.BufferRange, bool)

	// ChangesSince returns, in publish order, the retained ranges newer than
	// the consumer's watermark. Check HasLostChanges first: when history was
	// evicted the returned replay is incomplete.
	//
	// Parameters:
	//   - lastSyncedVersion: the consumer's watermark
	//
	// Returns:
	//   - []region.BufferRange: the ranges to replay
	ChangesSince(lastSyncedVersion int) []region.BufferRange

	// IsStale reports whether changes were published past the watermark.
	//
	// Parameters:
	//   - lastSyncedVersion: the consumer's watermark
	//
	// Returns:
	//   - bool: true if the consumer is behind
	IsStale(lastSyncedVersion int) bool

	// HasLostChanges reports whether history relevant to the watermark was
	// evicted. A true result means incremental replay is impossible and the
	// whole buffer must be treated as dirty.
	//
	// Parameters:
	//   - lastSyncedVersion: the consumer's watermark
	//
	// Returns:
	//   - bool: true if relevant history was evicted
	HasLostChanges(lastSyncedVersion int) bool
}

var _ VertexBuffer = &vertexBuffer{}

// NewVertexBuffer creates a new VertexBuffer holding length elements. Panics
// if gen is nil or length < 1.
//
// Parameters:
//   - name: the buffer's human-readable identifier
//   - gen: the IDGenerator assigning the unique ID (must not be nil)
//   - length: the declared element count, at least 1
//   - options: functional options to further configure the buffer
//
// Returns:
//   - VertexBuffer: the newly created buffer
func NewVertexBuffer(name string, gen IDGenerator, length int, options ...VertexBufferBuilderOption) VertexBuffer {
	if gen == nil {
		panic("resource: NewVertexBuffer requires a non-nil IDGenerator")
	}
	if length < 1 {
		panic(fmt.Sprintf("resource: invalid vertex buffer length %d for %q", length, name))
	}
	b := &vertexBuffer{
		mu:      &sync.RWMutex{},
		id:      gen.Next(),
		name:    name,
		length:  length,
		usage:   wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		changes: change_queue.NewChangeQueue[region.BufferRange](),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *vertexBuffer) ID() uint64 {
	return b.id
}

func (b *vertexBuffer) Name() string {
	return b.name
}

func (b *vertexBuffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.length
}

func (b *vertexBuffer) Usage() wgpu.BufferUsage {
	return b.usage
}

func (b *vertexBuffer) MarkDataDirty(offset, length int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if length < 1 {
		return 0, region.ErrInvalidDimension
	}
	offset = max(0, min(offset, b.length-1))
	length = min(length, b.length-offset)

	r, err := region.NewBufferRange(offset, length)
	if err != nil {
		return 0, err
	}
	return b.changes.Push(r), nil
}

func (b *vertexBuffer) SetLength(length int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if length < 1 {
		return 0, region.ErrInvalidDimension
	}
	b.length = length

	full, err := region.NewBufferRange(0, length)
	if err != nil {
		return 0, err
	}
	b.changes.Clear()
	return b.changes.Push(full), nil
}

func (b *vertexBuffer) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.changes.Version()
}

func (b *vertexBuffer) LatestChange() (region.BufferRange, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.changes.LatestChange()
}

func (b *vertexBuffer) ChangesSince(lastSyncedVersion int) []region.BufferRange {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.changes.ChangesSince(lastSyncedVersion)
}

func (b *vertexBuffer) IsStale(lastSyncedVersion int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.changes.IsStale(lastSyncedVersion)
}

func (b *vertexBuffer) HasLostChanges(lastSyncedVersion int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.changes.HasLostChanges(lastSyncedVersion)
}
