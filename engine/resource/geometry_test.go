package resource

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryPanicsOnNilGenerator(t *testing.T) {
	assert.Panics(t, func() {
		NewGeometry("orphan", nil)
	})
}

func TestGeometryDefaultsAndOptions(t *testing.T) {
	gen := NewSequentialIDGenerator()
	g := NewGeometry("mesh", gen)
	assert.Equal(t, wgpu.IndexFormatUint16, g.IndexFormat())
	assert.Equal(t, 0, g.IndexCount())
	assert.Empty(t, g.Attributes())

	g32 := NewGeometry("big-mesh", gen, WithIndexFormat(wgpu.IndexFormatUint32))
	assert.Equal(t, wgpu.IndexFormatUint32, g32.IndexFormat())
}

func TestGeometrySetAttributeTracksAddThenModify(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())

	err := g.SetAttribute("position", VertexAttribute{Format: wgpu.VertexFormatFloat32x3, ElementCount: 100})
	require.NoError(t, err)

	taken := g.TakeDirtyState()
	assert.Equal(t, []string{"position"}, taken.AddedAttributes())
	r := taken.ModifiedAttributes()["position"]
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, 100, r.Length())

	// Replacing an existing attribute is a modification, not a new add.
	err = g.SetAttribute("position", VertexAttribute{Format: wgpu.VertexFormatFloat32x3, ElementCount: 100})
	require.NoError(t, err)
	taken = g.TakeDirtyState()
	assert.Empty(t, taken.AddedAttributes())
	assert.Contains(t, taken.ModifiedAttributes(), "position")
}

func TestGeometryUpdateAttributeRange(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())
	err := g.SetAttribute("position", VertexAttribute{Format: wgpu.VertexFormatFloat32x3, ElementCount: 100})
	require.NoError(t, err)
	g.TakeDirtyState()

	err = g.UpdateAttributeRange("position", 20, 1000)
	require.NoError(t, err)
	taken := g.TakeDirtyState()
	r := taken.ModifiedAttributes()["position"]
	assert.Equal(t, 20, r.Offset())
	assert.Equal(t, 80, r.Length()) // clamped to the attribute's element count

	err = g.UpdateAttributeRange("missing", 0, 10)
	require.Error(t, err)
}

func TestGeometryRemoveAttribute(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())
	err := g.SetAttribute("color", VertexAttribute{Format: wgpu.VertexFormatFloat32x4, ElementCount: 50})
	require.NoError(t, err)
	g.TakeDirtyState()

	g.RemoveAttribute("color")
	_, exists := g.Attribute("color")
	assert.False(t, exists)

	taken := g.TakeDirtyState()
	assert.Equal(t, []string{"color"}, taken.RemovedAttributes())

	// Removing an unknown attribute is a no-op.
	g.RemoveAttribute("missing")
	assert.True(t, g.TakeDirtyState().Empty())
}

func TestGeometryAttributeChurnNetsToAdded(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())
	attr := VertexAttribute{Format: wgpu.VertexFormatFloat32x4, ElementCount: 50}

	require.NoError(t, g.SetAttribute("color", attr))
	g.RemoveAttribute("color")
	require.NoError(t, g.SetAttribute("color", attr))

	taken := g.TakeDirtyState()
	assert.Equal(t, []string{"color"}, taken.AddedAttributes())
	assert.Empty(t, taken.RemovedAttributes())
}

func TestGeometryIndices(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())

	err := g.SetIndices(wgpu.IndexFormatUint32, 300)
	require.NoError(t, err)
	assert.Equal(t, wgpu.IndexFormatUint32, g.IndexFormat())
	assert.Equal(t, 300, g.IndexCount())

	taken := g.TakeDirtyState()
	r := taken.DirtyIndices()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, 300, r.Length())

	err = g.MarkIndicesDirty(250, 500)
	require.NoError(t, err)
	taken = g.TakeDirtyState()
	r = taken.DirtyIndices()
	require.NotNil(t, r)
	assert.Equal(t, 250, r.Offset())
	assert.Equal(t, 50, r.Length()) // clamped to the declared index count
}

func TestGeometryTakeDirtyStateResets(t *testing.T) {
	g := NewGeometry("mesh", NewSequentialIDGenerator())
	require.NoError(t, g.SetAttribute("position", VertexAttribute{Format: wgpu.VertexFormatFloat32x3, ElementCount: 10}))

	assert.False(t, g.TakeDirtyState().Empty())
	assert.True(t, g.TakeDirtyState().Empty())
}
