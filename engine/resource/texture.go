package resource

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// texture is the implementation of the Texture interface.
type texture struct {
	mu *sync.RWMutex

	id   uint64
	name string

	width, height, depth int
	numMipmaps           int
	format               wgpu.TextureFormat
	params               common.SamplerParameters

	dirty dirty.TextureState
	empty dirty.TextureState // pristine state the slot is reset to on take
}

// Texture is a mutable 1D, 2D, or 3D texture tracking which pixel regions
// changed since a consumer last synchronized it. Mark calls with an
// out-of-range level are silent no-ops. Thread-safe for concurrent access;
// TakeDirtyState is the single destructive read.
type Texture interface {
	Resource

	// Width returns the level-0 width in pixels.
	Width() int

	// Height returns the level-0 height in pixels (1 for 1D textures).
	Height() int

	// Depth returns the level-0 depth in pixels (1 for 1D/2D textures).
	Depth() int

	// NumMipmaps returns the number of levels in the mipmap pyramid.
	NumMipmaps() int

	// Format returns the GPU texel format of the image data.
	//
	// Returns:
	//   - wgpu.TextureFormat: the texel format
	Format() wgpu.TextureFormat

	// SamplerParameters returns the current sampling configuration.
	//
	// Returns:
	//   - common.SamplerParameters: the sampler configuration
	SamplerParameters() common.SamplerParameters

	// SetSamplerParameters replaces the sampling configuration and marks the
	// dirty state's parameters flag, since the change affects no pixel bytes.
	//
	// Parameters:
	//   - params: the new sampler configuration
	SetSamplerParameters(params common.SamplerParameters)

	// MarkRegionDirty records that r within the given mipmap level changed.
	// The region is constrained to the computed dimensions of that level. An
	// out-of-range level is a no-op.
	//
	// Parameters:
	//   - level: the mipmap level the change belongs to
	//   - r: the changed region, in level-local coordinates
	MarkRegionDirty(level int, r region.Region)

	// MarkLevelDirty records that the entire given mipmap level changed. An
	// out-of-range level is a no-op.
	//
	// Parameters:
	//   - level: the mipmap level to dirty in full
	MarkLevelDirty(level int)

	// MarkAllDirty records that every mipmap level changed in full.
	MarkAllDirty()

	// TakeDirtyState atomically returns the accumulated dirty state and
	// resets the slot to empty. A consumer must apply every dirty key of the
	// snapshot before discarding it; a second take with no intervening
	// mutation returns an empty state.
	//
	// Returns:
	//   - dirty.TextureState: the snapshot of pending changes
	TakeDirtyState() dirty.TextureState
}

var _ Texture = &texture{}

// NewTexture creates a new Texture with the given shape. Panics if gen is nil
// or the shape is invalid, since a texture with no identity or no valid
// extent can never be synchronized.
//
// Parameters:
//   - name: the texture's human-readable identifier
//   - gen: the IDGenerator assigning the texture's unique ID (must not be nil)
//   - width, height, depth: level-0 dimensions, each at least 1 (use 1 for collapsed axes)
//   - numMipmaps: number of levels in the pyramid, at least 1
//   - options: functional options to further configure the texture
//
// Returns:
//   - Texture: the newly created texture
func NewTexture(name string, gen IDGenerator, width, height, depth, numMipmaps int, options ...TextureBuilderOption) Texture {
	if gen == nil {
		panic("resource: NewTexture requires a non-nil IDGenerator")
	}
	empty, err := dirty.NewTextureState(width, height, depth, numMipmaps)
	if err != nil {
		panic(fmt.Sprintf("resource: invalid texture shape for %q: %v", name, err))
	}

	t := &texture{
		mu:         &sync.RWMutex{},
		id:         gen.Next(),
		name:       name,
		width:      width,
		height:     height,
		depth:      depth,
		numMipmaps: numMipmaps,
		format:     wgpu.TextureFormatRGBA8Unorm,
		params:     common.DefaultSamplerParameters(),
		dirty:      empty,
		empty:      empty,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *texture) ID() uint64 {
	return t.id
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Width() int {
	return t.width
}

func (t *texture) Height() int {
	return t.height
}

func (t *texture) Depth() int {
	return t.depth
}

func (t *texture) NumMipmaps() int {
	return t.numMipmaps
}

func (t *texture) Format() wgpu.TextureFormat {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.format
}

func (t *texture) SamplerParameters() common.SamplerParameters {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.params
}

func (t *texture) SetSamplerParameters(params common.SamplerParameters) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.params = params
	t.dirty = t.dirty.MarkParametersDirty()
}

func (t *texture) MarkRegionDirty(level int, r region.Region) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = t.dirty.MarkRegionDirty(level, r)
}

func (t *texture) MarkLevelDirty(level int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = t.dirty.MarkLevelDirty(level)
}

func (t *texture) MarkAllDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for level := 0; level < t.numMipmaps; level++ {
		t.dirty = t.dirty.MarkLevelDirty(level)
	}
}

func (t *texture) TakeDirtyState() dirty.TextureState {
	t.mu.Lock()
	defer t.mu.Unlock()
	taken := t.dirty
	t.dirty = t.empty
	return taken
}
