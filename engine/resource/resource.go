// package resource contains the mutable, CPU-side GPU resource types that own
// the dirty tracking for their data. Each resource holds exactly one dirty
// slot (or change queue) and serializes access to it with its own lock, so
// the destructive take-and-reset read is a single call usable from any
// goroutine. The dirty descriptors themselves are the immutable values from
// the dirty package.
package resource

import "sync/atomic"

// Resource is the common surface of every trackable resource.
type Resource interface {
	// ID retrieves the unique identifier assigned at construction.
	//
	// Returns:
	//   - uint64: the resource ID
	ID() uint64

	// Name retrieves the resource's human-readable identifier.
	//
	// Returns:
	//   - string: the resource name
	Name() string
}

// IDGenerator produces unique resource identifiers. Generators are supplied
// explicitly to resource constructors — there is no hidden package-level
// counter — so independent resource managers can maintain independent ID
// spaces.
type IDGenerator interface {
	// Next returns the next unused identifier.
	//
	// Returns:
	//   - uint64: a unique ID, never 0
	Next() uint64
}

// sequentialIDGenerator is the implementation of the IDGenerator interface.
type sequentialIDGenerator struct {
	next uint64
}

var _ IDGenerator = &sequentialIDGenerator{}

// NewSequentialIDGenerator creates an IDGenerator that hands out 1, 2, 3, ...
// It is safe for concurrent use.
//
// Returns:
//   - IDGenerator: the new generator
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

func (g *sequentialIDGenerator) Next() uint64 {
	return atomic.AddUint64(&g.next, 1)
}
