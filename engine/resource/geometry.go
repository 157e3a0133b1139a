package resource

import (
	"fmt"
	"maps"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
)

// VertexAttribute describes one named vertex attribute of a Geometry: its
// element format and how many elements its buffer holds. The attribute bytes
// themselves live outside this module.
type VertexAttribute struct {
	// Format is the per-element GPU vertex format.
	Format wgpu.VertexFormat
	// ElementCount is the number of elements in the attribute's buffer.
	ElementCount int
}

// geometry is the implementation of the Geometry interface.
type geometry struct {
	mu *sync.RWMutex

	id   uint64
	name string

	attributes  map[string]VertexAttribute
	indexFormat wgpu.IndexFormat
	indexCount  int

	dirty dirty.GeometryState
}

// Geometry is a mutable multi-attribute mesh resource tracking attribute
// churn (added, removed, modified ranges) and index buffer changes since a
// consumer last synchronized it. Thread-safe; TakeDirtyState is the single
// destructive read.
type Geometry interface {
	Resource

	// Attributes returns a copy of the current attribute descriptors keyed by name.
	//
	// Returns:
	//   - map[string]VertexAttribute: the attribute descriptors
	Attributes() map[string]VertexAttribute

	// Attribute retrieves one attribute descriptor by name.
	//
	// Parameters:
	//   - name: the attribute name
	//
	// Returns:
	//   - VertexAttribute: the descriptor
	//   - bool: true if the attribute exists
	Attribute(name string) (VertexAttribute, bool)

	// SetAttribute attaches or replaces a named attribute. If the name is not
	// currently attached the dirty state records it as added (clearing any
	// pending removal of the same name); either way its full element range is
	// recorded as modified.
	//
	// Parameters:
	//   - name: the attribute name
	//   - attr: the attribute descriptor, ElementCount must be at least 1
	//
	// Returns:
	//   - error: region.ErrInvalidDimension if attr.ElementCount < 1
	SetAttribute(name string, attr VertexAttribute) error

	// UpdateAttributeRange records that [offset, offset+length) of an
	// attached attribute's buffer changed in place. The length is clamped to
	// the attribute's element count.
	//
	// Parameters:
	//   - name: the attribute name
	//   - offset: the first changed element
	//   - length: the number of changed elements, must be at least 1
	//
	// Returns:
	//   - error: region.ErrInvalidDimension if length < 1, or an error if the
	//     attribute is not attached
	UpdateAttributeRange(name string, offset, length int) error

	// RemoveAttribute detaches a named attribute and records the removal.
	// Removal wins over any add or modification recorded earlier in the same
	// update cycle. Unknown names are a no-op.
	//
	// Parameters:
	//   - name: the attribute name
	RemoveAttribute(name string)

	// IndexFormat returns the GPU index format of the index buffer.
	//
	// Returns:
	//   - wgpu.IndexFormat: the index format
	IndexFormat() wgpu.IndexFormat

	// IndexCount returns the number of indices in the index buffer.
	IndexCount() int

	// SetIndices replaces the index buffer descriptor and records the full
	// index range as dirty.
	//
	// Parameters:
	//   - format: the GPU index format
	//   - count: the number of indices, must be at least 1
	//
	// Returns:
	//   - error: region.ErrInvalidDimension if count < 1
	SetIndices(format wgpu.IndexFormat, count int) error

	// MarkIndicesDirty records that [offset, offset+length) of the index
	// buffer changed. The length is clamped to the index count.
	//
	// Parameters:
	//   - offset: the first changed index
	//   - length: the number of changed indices, must be at least 1
	//
	// Returns:
	//   - error: region.ErrInvalidDimension if length < 1
	MarkIndicesDirty(offset, length int) error

	// TakeDirtyState atomically returns the accumulated dirty state and
	// resets the slot to empty.
	//
	// Returns:
	//   - dirty.GeometryState: the snapshot of pending changes
	TakeDirtyState() dirty.GeometryState
}

var _ Geometry = &geometry{}

// NewGeometry creates a new empty Geometry. Panics if gen is nil.
//
// Parameters:
//   - name: the geometry's human-readable identifier
//   - gen: the IDGenerator assigning the unique ID (must not be nil)
//   - options: functional options to further configure the geometry
//
// Returns:
//   - Geometry: the newly created geometry
func NewGeometry(name string, gen IDGenerator, options ...GeometryBuilderOption) Geometry {
	if gen == nil {
		panic("resource: NewGeometry requires a non-nil IDGenerator")
	}
	g := &geometry{
		mu:          &sync.RWMutex{},
		id:          gen.Next(),
		name:        name,
		attributes:  make(map[string]VertexAttribute),
		indexFormat: wgpu.IndexFormatUint16,
		dirty:       dirty.NewGeometryState(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *geometry) ID() uint64 {
	return g.id
}

func (g *geometry) Name() string {
	return g.name
}

func (g *geometry) Attributes() map[string]VertexAttribute {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]VertexAttribute, len(g.attributes))
	maps.Copy(out, g.attributes)
	return out
}

func (g *geometry) Attribute(name string) (VertexAttribute, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	attr, ok := g.attributes[name]
	return attr, ok
}

func (g *geometry) SetAttribute(name string, attr VertexAttribute) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, exists := g.attributes[name]
	updated, err := g.dirty.UpdateAttribute(name, 0, attr.ElementCount, !exists)
	if err != nil {
		return fmt.Errorf("geometry %q: set attribute %q: %w", g.name, name, err)
	}
	g.attributes[name] = attr
	g.dirty = updated
	return nil
}

func (g *geometry) UpdateAttributeRange(name string, offset, length int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	attr, exists := g.attributes[name]
	if !exists {
		return fmt.Errorf("geometry %q has no attribute %q", g.name, name)
	}
	offset = max(0, min(offset, attr.ElementCount-1))
	length = min(length, attr.ElementCount-offset)

	updated, err := g.dirty.UpdateAttribute(name, offset, length, false)
	if err != nil {
		return fmt.Errorf("geometry %q: update attribute %q: %w", g.name, name, err)
	}
	g.dirty = updated
	return nil
}

func (g *geometry) RemoveAttribute(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.attributes[name]; !exists {
		return
	}
	delete(g.attributes, name)
	g.dirty = g.dirty.RemoveAttribute(name)
}

func (g *geometry) IndexFormat() wgpu.IndexFormat {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.indexFormat
}

func (g *geometry) IndexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.indexCount
}

func (g *geometry) SetIndices(format wgpu.IndexFormat, count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	updated, err := g.dirty.MarkIndicesDirty(0, count)
	if err != nil {
		return fmt.Errorf("geometry %q: set indices: %w", g.name, err)
	}
	g.indexFormat = format
	g.indexCount = count
	g.dirty = updated
	return nil
}

func (g *geometry) MarkIndicesDirty(offset, length int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexCount > 0 {
		offset = max(0, min(offset, g.indexCount-1))
		length = min(length, g.indexCount-offset)
	}
	updated, err := g.dirty.MarkIndicesDirty(offset, length)
	if err != nil {
		return fmt.Errorf("geometry %q: mark indices dirty: %w", g.name, err)
	}
	g.dirty = updated
	return nil
}

func (g *geometry) TakeDirtyState() dirty.GeometryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	taken := g.dirty
	g.dirty = dirty.NewGeometryState()
	return taken
}
