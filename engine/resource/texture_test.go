package resource

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/region"
)

func TestNewTexturePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() {
		NewTexture("orphan", nil, 16, 16, 1, 1)
	})
	assert.Panics(t, func() {
		NewTexture("flat", NewSequentialIDGenerator(), 16, 0, 1, 1)
	})
	assert.Panics(t, func() {
		NewTexture("no-levels", NewSequentialIDGenerator(), 16, 16, 1, 0)
	})
}

func TestTextureDefaultsAndOptions(t *testing.T) {
	gen := NewSequentialIDGenerator()
	tex := NewTexture("diffuse", gen, 16, 16, 1, 4)

	assert.Equal(t, "diffuse", tex.Name())
	assert.Equal(t, 16, tex.Width())
	assert.Equal(t, 16, tex.Height())
	assert.Equal(t, 1, tex.Depth())
	assert.Equal(t, 4, tex.NumMipmaps())
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, tex.Format())
	assert.Equal(t, common.DefaultSamplerParameters(), tex.SamplerParameters())
	assert.True(t, tex.TakeDirtyState().Empty())

	custom := NewTexture("depth", gen, 8, 8, 1, 1,
		WithTextureFormat(wgpu.TextureFormatDepth32Float))
	assert.Equal(t, wgpu.TextureFormatDepth32Float, custom.Format())
	assert.NotEqual(t, tex.ID(), custom.ID())
	// Builder-supplied sampler parameters are initial configuration, not a
	// tracked change.
	assert.True(t, custom.TakeDirtyState().Empty())
}

func TestTextureTakeDirtyStateResets(t *testing.T) {
	tex := NewTexture("diffuse", NewSequentialIDGenerator(), 16, 16, 1, 4)

	r, err := region.New2D(2, 3, 5, 4)
	require.NoError(t, err)
	tex.MarkRegionDirty(0, r)

	taken := tex.TakeDirtyState()
	require.False(t, taken.Empty())
	dirtyRegion, err := taken.DirtyMipmap(0)
	require.NoError(t, err)
	require.NotNil(t, dirtyRegion)
	assert.Equal(t, 2, dirtyRegion.X())

	// A second take with no intervening mutation is empty.
	assert.True(t, tex.TakeDirtyState().Empty())
}

func TestTextureSetSamplerParametersMarksDirty(t *testing.T) {
	tex := NewTexture("diffuse", NewSequentialIDGenerator(), 16, 16, 1, 1)

	params := common.DefaultSamplerParameters()
	params.MagFilter = wgpu.FilterModeNearest
	tex.SetSamplerParameters(params)

	assert.Equal(t, params, tex.SamplerParameters())
	taken := tex.TakeDirtyState()
	assert.True(t, taken.ParametersDirty())
}

func TestTextureMarkAllDirty(t *testing.T) {
	tex := NewTexture("diffuse", NewSequentialIDGenerator(), 16, 16, 1, 3)
	tex.MarkAllDirty()

	taken := tex.TakeDirtyState()
	for level := 0; level < 3; level++ {
		r, err := taken.DirtyMipmap(level)
		require.NoError(t, err)
		assert.NotNil(t, r, "level %d", level)
	}
}

func TestTextureOutOfRangeMarkIsNoOp(t *testing.T) {
	tex := NewTexture("diffuse", NewSequentialIDGenerator(), 16, 16, 1, 2)
	tex.MarkLevelDirty(2)
	tex.MarkLevelDirty(-1)
	assert.True(t, tex.TakeDirtyState().Empty())
}
