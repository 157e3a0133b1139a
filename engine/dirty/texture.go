package dirty

import (
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// TextureState is the dirty descriptor for a 1D, 2D, or 3D texture: one
// optional Region per mipmap level plus a flag for sampler/parameter changes
// that have no byte range. TextureState is immutable; every mutator returns
// a new value.
//
// Mark* calls given an out-of-range level are silent no-ops; DirtyMipmap
// given an out-of-range level fails with ErrIndexOutOfRange.
type TextureState struct {
	baseWidth, baseHeight, baseDepth int
	numMipmaps                       int

	mipmaps         regionTable[int]
	parametersDirty bool
}

// NewTextureState creates an empty TextureState for a texture with the given
// level-0 dimensions and mipmap count. Collapsed axes (a 1D or 2D texture)
// use a dimension of 1.
//
// Parameters:
//   - baseWidth, baseHeight, baseDepth: level-0 dimensions, each at least 1
//   - numMipmaps: number of levels in the pyramid, at least 1
//
// Returns:
//   - TextureState: the empty state
//   - error: region.ErrInvalidDimension if any dimension or the mipmap count is < 1
func NewTextureState(baseWidth, baseHeight, baseDepth, numMipmaps int) (TextureState, error) {
	if baseWidth < 1 || baseHeight < 1 || baseDepth < 1 || numMipmaps < 1 {
		return TextureState{}, region.ErrInvalidDimension
	}
	return TextureState{
		baseWidth:  baseWidth,
		baseHeight: baseHeight,
		baseDepth:  baseDepth,
		numMipmaps: numMipmaps,
	}, nil
}

// NumMipmaps returns the number of levels in the tracked pyramid.
func (s TextureState) NumMipmaps() int {
	return s.numMipmaps
}

// MarkRegionDirty returns a new state with r merged into the dirty region at
// the given level. r is constrained to the computed dimensions of that level
// before merging. An out-of-range level returns s unchanged.
//
// Parameters:
//   - level: the mipmap level the change belongs to
//   - r: the changed region, in level-local coordinates
//
// Returns:
//   - TextureState: the updated state
func (s TextureState) MarkRegionDirty(level int, r region.Region) TextureState {
	if level < 0 || level >= s.numMipmaps {
		return s
	}
	constrained, err := region.Constrain(r,
		MipmapDimension(s.baseWidth, level),
		MipmapDimension(s.baseHeight, level),
		MipmapDimension(s.baseDepth, level),
		0, level)
	if err != nil {
		// Unreachable: mipmap dims are at least 1 and level is validated above.
		return s
	}
	out := s
	out.mipmaps = s.mipmaps.updated(level, constrained)
	return out
}

// MarkLevelDirty returns a new state with the entire extent of the given
// level marked dirty. An out-of-range level returns s unchanged.
//
// Parameters:
//   - level: the mipmap level to dirty in full
//
// Returns:
//   - TextureState: the updated state
func (s TextureState) MarkLevelDirty(level int) TextureState {
	if level < 0 || level >= s.numMipmaps {
		return s
	}
	full, err := region.New3D(0, 0, 0,
		MipmapDimension(s.baseWidth, level),
		MipmapDimension(s.baseHeight, level),
		MipmapDimension(s.baseDepth, level))
	if err != nil {
		return s
	}
	return s.MarkRegionDirty(level, full)
}

// MarkParametersDirty returns a new state with the sampler/parameter flag
// asserted. Idempotent.
func (s TextureState) MarkParametersDirty() TextureState {
	out := s
	out.parametersDirty = true
	return out
}

// Merge returns the pointwise union of s and other: every level's region is
// merged, and the parameters flag is set if it is set on either side. Both
// states must describe a texture of the same shape.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - TextureState: the merged state
//   - error: region.ErrIncompatibleMerge if the base dimensions or mipmap counts differ
func (s TextureState) Merge(other TextureState) (TextureState, error) {
	if other.baseWidth != s.baseWidth || other.baseHeight != s.baseHeight ||
		other.baseDepth != s.baseDepth || other.numMipmaps != s.numMipmaps {
		return TextureState{}, region.ErrIncompatibleMerge
	}
	out := s
	out.mipmaps = s.mipmaps.union(other.mipmaps)
	out.parametersDirty = s.parametersDirty || other.parametersDirty
	return out, nil
}

// DirtyMipmap returns a copy of the dirty region at the given level, or nil
// if that level is clean.
//
// Parameters:
//   - level: the mipmap level to read
//
// Returns:
//   - *region.Region: the dirty region or nil
//   - error: ErrIndexOutOfRange if level is outside [0, NumMipmaps())
func (s TextureState) DirtyMipmap(level int) (*region.Region, error) {
	if level < 0 || level >= s.numMipmaps {
		return nil, ErrIndexOutOfRange
	}
	return s.mipmaps.get(level), nil
}

// ParametersDirty reports whether non-byte-range texture parameters (sampler
// settings) have changed.
func (s TextureState) ParametersDirty() bool {
	return s.parametersDirty
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s TextureState) Empty() bool {
	return s.mipmaps.empty() && !s.parametersDirty
}
