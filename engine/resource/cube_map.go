package resource

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// cubeMap is the implementation of the CubeMap interface.
type cubeMap struct {
	mu *sync.RWMutex

	id   uint64
	name string

	side       int
	numMipmaps int
	format     wgpu.TextureFormat
	params     common.SamplerParameters

	dirty dirty.CubeMapState
	empty dirty.CubeMapState
}

// CubeMap is a mutable six-faced cube-map texture tracking which pixel
// regions changed per face since a consumer last synchronized it. Faces are
// fully independent: marking one face dirty never touches another. Mark calls
// with an out-of-range face or level are silent no-ops. Thread-safe;
// TakeDirtyState is the single destructive read.
type CubeMap interface {
	Resource

	// Side returns the level-0 edge length of each face in pixels.
	Side() int

	// NumMipmaps returns the number of levels per face.
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

	// MarkRegionDirty records that r within the given face and level changed.
	// An out-of-range face or level is a no-op.
	//
	// Parameters:
	//   - face: the cube face the change belongs to
	//   - level: the mipmap level within that face
	//   - r: the changed region, in level-local coordinates
	MarkRegionDirty(face dirty.CubeFace, level int, r region.Region)

	// MarkLevelDirty records that the entire given face and level changed.
	// An out-of-range face or level is a no-op.
	//
	// Parameters:
	//   - face: the cube face to dirty
	//   - level: the mipmap level within that face
	MarkLevelDirty(face dirty.CubeFace, level int)

	// MarkFaceDirty records that every level of the given face changed. An
	// out-of-range face is a no-op.
	//
	// Parameters:
	//   - face: the cube face to dirty in full
	MarkFaceDirty(face dirty.CubeFace)

	// MarkAllDirty records that every face changed in full.
	MarkAllDirty()

	// TakeDirtyState atomically returns the accumulated dirty state and
	// resets the slot to empty.
	//
	// Returns:
	//   - dirty.CubeMapState: the snapshot of pending changes
	TakeDirtyState() dirty.CubeMapState
}

var _ CubeMap = &cubeMap{}

// NewCubeMap creates a new CubeMap with the given shape. Panics if gen is nil
// or the shape is invalid.
//
// Parameters:
//   - name: the cube map's human-readable identifier
//   - gen: the IDGenerator assigning the unique ID (must not be nil)
//   - side: the level-0 edge length of each face, at least 1
//   - numMipmaps: number of levels per face, at least 1
//   - options: functional options to further configure the cube map
//
// Returns:
//   - CubeMap: the newly created cube map
func NewCubeMap(name string, gen IDGenerator, side, numMipmaps int, options ...CubeMapBuilderOption) CubeMap {
	if gen == nil {
		panic("resource: NewCubeMap requires a non-nil IDGenerator")
	}
	empty, err := dirty.NewCubeMapState(side, numMipmaps)
	if err != nil {
		panic(fmt.Sprintf("resource: invalid cube map shape for %q: %v", name, err))
	}

	c := &cubeMap{
		mu:         &sync.RWMutex{},
		id:         gen.Next(),
		name:       name,
		side:       side,
		numMipmaps: numMipmaps,
		format:     wgpu.TextureFormatRGBA8Unorm,
		params:     common.DefaultSamplerParameters(),
		dirty:      empty,
		empty:      empty,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cubeMap) ID() uint64 {
	return c.id
}

func (c *cubeMap) Name() string {
	return c.name
}

func (c *cubeMap) Side() int {
	return c.side
}

func (c *cubeMap) NumMipmaps() int {
	return c.numMipmaps
}

func (c *cubeMap) Format() wgpu.TextureFormat {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

func (c *cubeMap) SamplerParameters() common.SamplerParameters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params
}

func (c *cubeMap) SetSamplerParameters(params common.SamplerParameters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = params
	c.dirty = c.dirty.MarkParametersDirty()
}

func (c *cubeMap) MarkRegionDirty(face dirty.CubeFace, level int, r region.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = c.dirty.MarkRegionDirty(face, level, r)
}

func (c *cubeMap) MarkLevelDirty(face dirty.CubeFace, level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = c.dirty.MarkLevelDirty(face, level)
}

func (c *cubeMap) MarkFaceDirty(face dirty.CubeFace) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = c.dirty.MarkFaceDirty(face)
}

func (c *cubeMap) MarkAllDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for face := dirty.CubeFace(0); face < dirty.NumCubeFaces; face++ {
		c.dirty = c.dirty.MarkFaceDirty(face)
	}
}

func (c *cubeMap) TakeDirtyState() dirty.CubeMapState {
	c.mu.Lock()
	defer c.mu.Unlock()
	taken := c.dirty
	c.dirty = c.empty
	return taken
}
