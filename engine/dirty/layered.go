package dirty

import (
	"github.com/lhkbob/ferox-sub010/engine/region"
)

type layerLevel struct {
	layer, level int
}

// LayeredState is the dirty descriptor for a general array texture: one
// optional Region per (layer, mipmap level) pair, plus a sampler/parameter
// flag. Unlike TextureState, merging two LayeredStates with different layer
// or mipmap counts is defined: the result's shape is the element-wise maximum
// and entries present on only one side pass through unchanged. The level-0
// dimensions must still match. LayeredState is immutable; every mutator
// returns a new value.
//
// Mark* calls given an out-of-range layer or level are silent no-ops;
// DirtyMipmap given an out-of-range layer or level fails with
// ErrIndexOutOfRange.
type LayeredState struct {
	baseWidth, baseHeight int
	numLayers             int
	numMipmaps            int

	layers          regionTable[layerLevel]
	parametersDirty bool
}

// NewLayeredState creates an empty LayeredState for an array texture with the
// given per-layer level-0 dimensions, layer count, and mipmap count.
//
// Parameters:
//   - baseWidth, baseHeight: level-0 dimensions of every layer, each at least 1
//   - numLayers: number of array layers, at least 1
//   - numMipmaps: number of levels per layer, at least 1
//
// Returns:
//   - LayeredState: the empty state
//   - error: region.ErrInvalidDimension if any parameter is < 1
func NewLayeredState(baseWidth, baseHeight, numLayers, numMipmaps int) (LayeredState, error) {
	if baseWidth < 1 || baseHeight < 1 || numLayers < 1 || numMipmaps < 1 {
		return LayeredState{}, region.ErrInvalidDimension
	}
	return LayeredState{
		baseWidth:  baseWidth,
		baseHeight: baseHeight,
		numLayers:  numLayers,
		numMipmaps: numMipmaps,
	}, nil
}

// NumLayers returns the number of array layers.
func (s LayeredState) NumLayers() int {
	return s.numLayers
}

// NumMipmaps returns the number of levels per layer.
func (s LayeredState) NumMipmaps() int {
	return s.numMipmaps
}

// MarkRegionDirty returns a new state with r merged into the dirty region at
// the given layer and level. r is constrained to the computed dimensions of
// that level before merging. An out-of-range layer or level returns s
// unchanged.
//
// Parameters:
//   - layer: the array layer the change belongs to
//   - level: the mipmap level within that layer
//   - r: the changed region, in level-local coordinates
//
// Returns:
//   - LayeredState: the updated state
func (s LayeredState) MarkRegionDirty(layer, level int, r region.Region) LayeredState {
	if layer < 0 || layer >= s.numLayers || level < 0 || level >= s.numMipmaps {
		return s
	}
	constrained, err := region.Constrain(r,
		MipmapDimension(s.baseWidth, level),
		MipmapDimension(s.baseHeight, level),
		1, layer, level)
	if err != nil {
		return s
	}
	out := s
	out.layers = s.layers.updated(layerLevel{layer: layer, level: level}, constrained)
	return out
}

// MarkLevelDirty returns a new state with the entire extent of the given
// layer and level marked dirty. An out-of-range layer or level returns s
// unchanged.
//
// Parameters:
//   - layer: the array layer to dirty
//   - level: the mipmap level within that layer
//
// Returns:
//   - LayeredState: the updated state
func (s LayeredState) MarkLevelDirty(layer, level int) LayeredState {
	if layer < 0 || layer >= s.numLayers || level < 0 || level >= s.numMipmaps {
		return s
	}
	full, err := region.New2D(0, 0,
		MipmapDimension(s.baseWidth, level),
		MipmapDimension(s.baseHeight, level))
	if err != nil {
		return s
	}
	return s.MarkRegionDirty(layer, level, full)
}

// MarkParametersDirty returns a new state with the sampler/parameter flag
// asserted. Idempotent.
func (s LayeredState) MarkParametersDirty() LayeredState {
	out := s
	out.parametersDirty = true
	return out
}

// Merge returns the pointwise union of s and other. The merged state's layer
// and mipmap counts are the element-wise maximum of the two inputs; entries
// present on only one side pass through unchanged. The level-0 dimensions
// must match.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - LayeredState: the merged state
//   - error: region.ErrIncompatibleMerge if the level-0 dimensions differ
func (s LayeredState) Merge(other LayeredState) (LayeredState, error) {
	if other.baseWidth != s.baseWidth || other.baseHeight != s.baseHeight {
		return LayeredState{}, region.ErrIncompatibleMerge
	}
	out := s
	out.numLayers = max(s.numLayers, other.numLayers)
	out.numMipmaps = max(s.numMipmaps, other.numMipmaps)
	out.layers = s.layers.union(other.layers)
	out.parametersDirty = s.parametersDirty || other.parametersDirty
	return out, nil
}

// DirtyMipmap returns a copy of the dirty region at the given layer and
// level, or nil if that slot is clean.
//
// Parameters:
//   - layer: the array layer to read
//   - level: the mipmap level within that layer
//
// Returns:
//   - *region.Region: the dirty region or nil
//   - error: ErrIndexOutOfRange if layer or level is outside the declared shape
func (s LayeredState) DirtyMipmap(layer, level int) (*region.Region, error) {
	if layer < 0 || layer >= s.numLayers || level < 0 || level >= s.numMipmaps {
		return nil, ErrIndexOutOfRange
	}
	return s.layers.get(layerLevel{layer: layer, level: level}), nil
}

// ParametersDirty reports whether non-byte-range texture parameters (sampler
// settings) have changed.
func (s LayeredState) ParametersDirty() bool {
	return s.parametersDirty
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s LayeredState) Empty() bool {
	return s.layers.empty() && !s.parametersDirty
}
