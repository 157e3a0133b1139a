package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhkbob/ferox-sub010/engine/region"
)

func TestNewArrayTexturePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() {
		NewArrayTexture("orphan", nil, 32, 32, 4, 1)
	})
	assert.Panics(t, func() {
		NewArrayTexture("no-layers", NewSequentialIDGenerator(), 32, 32, 0, 1)
	})
}

func TestArrayTextureTakeDirtyStateResets(t *testing.T) {
	at := NewArrayTexture("atlas", NewSequentialIDGenerator(), 32, 32, 4, 2)
	assert.Equal(t, 4, at.NumLayers())
	assert.Equal(t, 2, at.NumMipmaps())

	r, err := region.New2D(4, 4, 8, 8)
	require.NoError(t, err)
	at.MarkRegionDirty(2, 0, r)

	taken := at.TakeDirtyState()
	require.False(t, taken.Empty())
	dirtyRegion, err := taken.DirtyMipmap(2, 0)
	require.NoError(t, err)
	require.NotNil(t, dirtyRegion)
	assert.Equal(t, 2, dirtyRegion.Layer())

	other, err := taken.DirtyMipmap(0, 0)
	require.NoError(t, err)
	assert.Nil(t, other)

	assert.True(t, at.TakeDirtyState().Empty())
}

func TestArrayTextureMarkAllDirty(t *testing.T) {
	at := NewArrayTexture("atlas", NewSequentialIDGenerator(), 16, 16, 2, 2)
	at.MarkAllDirty()

	taken := at.TakeDirtyState()
	for layer := 0; layer < 2; layer++ {
		for level := 0; level < 2; level++ {
			r, err := taken.DirtyMipmap(layer, level)
			require.NoError(t, err)
			assert.NotNil(t, r, "layer %d level %d", layer, level)
		}
	}
}
