package resource

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// arrayTexture is the implementation of the ArrayTexture interface.
type arrayTexture struct {
	mu *sync.RWMutex

	id   uint64
	name string

	width, height int
	numLayers     int
	numMipmaps    int
	format        wgpu.TextureFormat
	params        common.SamplerParameters

	dirty dirty.LayeredState
	empty dirty.LayeredState
}

// ArrayTexture is a mutable 2D array texture tracking which pixel regions
// changed per (layer, level) slot since a consumer last synchronized it.
// Mark calls with an out-of-range layer or level are silent no-ops.
// Thread-safe; TakeDirtyState is the single destructive read.
type ArrayTexture interface {
	Resource

	// Width returns the level-0 width of every layer in pixels.
	Width() int

	// Height returns the level-0 height of every layer in pixels.
	Height() int

	// NumLayers returns the number of array layers.
	NumLayers() int

	// NumMipmaps returns the number of levels per layer.
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
	// dirty state's parameters flag.
	//
	// Parameters:
	//   - params: the new sampler configuration
	SetSamplerParameters(params common.SamplerParameters)

	// MarkRegionDirty records that r within the given layer and level
	// changed. An out-of-range layer or level is a no-op.
	//
	// Parameters:
	//   - layer: the array layer the change belongs to
	//   - level: the mipmap level within that layer
	//   - r: the changed region, in level-local coordinates
	MarkRegionDirty(layer, level int, r region.Region)

	// MarkLevelDirty records that the entire given layer and level changed.
	// An out-of-range layer or level is a no-op.
	//
	// Parameters:
	//   - layer: the array layer to dirty
	//   - level: the mipmap level within that layer
	MarkLevelDirty(layer, level int)

	// MarkAllDirty records that every layer changed in full.
	MarkAllDirty()

	// TakeDirtyState atomically returns the accumulated dirty state and
	// resets the slot to empty.
	//
	// Returns:
	//   - dirty.LayeredState: the snapshot of pending changes
	TakeDirtyState() dirty.LayeredState
}

var _ ArrayTexture = &arrayTexture{}

// NewArrayTexture creates a new ArrayTexture with the given shape. Panics if
// gen is nil or the shape is invalid.
//
// Parameters:
//   - name: the texture's human-readable identifier
//   - gen: the IDGenerator assigning the unique ID (must not be nil)
//   - width, height: level-0 dimensions of every layer, each at least 1
//   - numLayers: number of array layers, at least 1
//   - numMipmaps: number of levels per layer, at least 1
//   - options: functional options to further configure the texture
//
// Returns:
//   - ArrayTexture: the newly created array texture
func NewArrayTexture(name string, gen IDGenerator, width, height, numLayers, numMipmaps int, options ...ArrayTextureBuilderOption) ArrayTexture {
	if gen == nil {
		panic("resource: NewArrayTexture requires a non-nil IDGenerator")
	}
	empty, err := dirty.NewLayeredState(width, height, numLayers, numMipmaps)
	if err != nil {
		panic(fmt.Sprintf("resource: invalid array texture shape for %q: %v", name, err))
	}

	a := &arrayTexture{
		mu:         &sync.RWMutex{},
		id:         gen.Next(),
		name:       name,
		width:      width,
		height:     height,
		numLayers:  numLayers,
		numMipmaps: numMipmaps,
		format:     wgpu.TextureFormatRGBA8Unorm,
		params:     common.DefaultSamplerParameters(),
		dirty:      empty,
		empty:      empty,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *arrayTexture) ID() uint64 {
	return a.id
}

func (a *arrayTexture) Name() string {
	return a.name
}

func (a *arrayTexture) Width() int {
	return a.width
}

func (a *arrayTexture) Height() int {
	return a.height
}

func (a *arrayTexture) NumLayers() int {
	return a.numLayers
}

func (a *arrayTexture) NumMipmaps() int {
	return a.numMipmaps
}

func (a *arrayTexture) Format() wgpu.TextureFormat {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.format
}

func (a *arrayTexture) SamplerParameters() common.SamplerParameters {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.params
}

func (a *arrayTexture) SetSamplerParameters(params common.SamplerParameters) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.params = params
	a.dirty = a.dirty.MarkParametersDirty()
}

func (a *arrayTexture) MarkRegionDirty(layer, level int, r region.Region) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirty = a.dirty.MarkRegionDirty(layer, level, r)
}

func (a *arrayTexture) MarkLevelDirty(layer, level int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirty = a.dirty.MarkLevelDirty(layer, level)
}

func (a *arrayTexture) MarkAllDirty() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for layer := 0; layer < a.numLayers; layer++ {
		for level := 0; level < a.numMipmaps; level++ {
			a.dirty = a.dirty.MarkLevelDirty(layer, level)
		}
	}
}

func (a *arrayTexture) TakeDirtyState() dirty.LayeredState {
	a.mu.Lock()
	defer a.mu.Unlock()
	taken := a.dirty
	a.dirty = a.empty
	return taken
}
