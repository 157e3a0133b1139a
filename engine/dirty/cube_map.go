package dirty

import (
	"github.com/lhkbob/ferox-sub010/engine/region"
)

// CubeFace identifies one of the six square images forming a cube-map
// texture.
type CubeFace int

const (
	// CubeFacePX is the positive-x face.
	CubeFacePX CubeFace = iota

	// CubeFaceNX is the negative-x face.
	CubeFaceNX

	// CubeFacePY is the positive-y face.
	CubeFacePY

	// CubeFaceNY is the negative-y face.
	CubeFaceNY

	// CubeFacePZ is the positive-z face.
	CubeFacePZ

	// CubeFaceNZ is the negative-z face.
	CubeFaceNZ
)

// NumCubeFaces is the number of faces in a cube map.
const NumCubeFaces = 6

type faceLevel struct {
	face  CubeFace
	level int
}

// CubeMapState is the dirty descriptor for a cube-map texture: six
// independent per-mipmap region sets, one per face, plus a sampler/parameter
// flag. Regions never merge across faces — each region is tagged with its
// face index, so a cross-face merge is structurally impossible. CubeMapState
// is immutable; every mutator returns a new value.
//
// Mark* calls given an out-of-range face or level are silent no-ops;
// DirtyMipmap given an out-of-range face or level fails with
// ErrIndexOutOfRange.
type CubeMapState struct {
	side       int
	numMipmaps int

	faces           regionTable[faceLevel]
	parametersDirty bool
}

// NewCubeMapState creates an empty CubeMapState for a cube map whose faces
// are side x side pixels at level 0.
//
// Parameters:
//   - side: the level-0 edge length of each face, at least 1
//   - numMipmaps: number of levels per face, at least 1
//
// Returns:
//   - CubeMapState: the empty state
//   - error: region.ErrInvalidDimension if side or numMipmaps is < 1
func NewCubeMapState(side, numMipmaps int) (CubeMapState, error) {
	if side < 1 || numMipmaps < 1 {
		return CubeMapState{}, region.ErrInvalidDimension
	}
	return CubeMapState{side: side, numMipmaps: numMipmaps}, nil
}

// Side returns the level-0 edge length of each face.
func (s CubeMapState) Side() int {
	return s.side
}

// NumMipmaps returns the number of levels per face.
func (s CubeMapState) NumMipmaps() int {
	return s.numMipmaps
}

// MarkRegionDirty returns a new state with r merged into the dirty region at
// the given face and level. r is constrained to the computed dimensions of
// that level before merging. An out-of-range face or level returns s
// unchanged.
//
// Parameters:
//   - face: the cube face the change belongs to
//   - level: the mipmap level within that face
//   - r: the changed region, in level-local coordinates
//
// Returns:
//   - CubeMapState: the updated state
func (s CubeMapState) MarkRegionDirty(face CubeFace, level int, r region.Region) CubeMapState {
	if face < 0 || face >= NumCubeFaces || level < 0 || level >= s.numMipmaps {
		return s
	}
	dim := MipmapDimension(s.side, level)
	constrained, err := region.Constrain(r, dim, dim, 1, int(face), level)
	if err != nil {
		return s
	}
	out := s
	out.faces = s.faces.updated(faceLevel{face: face, level: level}, constrained)
	return out
}

// MarkLevelDirty returns a new state with the entire extent of the given face
// and level marked dirty. An out-of-range face or level returns s unchanged.
//
// Parameters:
//   - face: the cube face to dirty
//   - level: the mipmap level within that face
//
// Returns:
//   - CubeMapState: the updated state
func (s CubeMapState) MarkLevelDirty(face CubeFace, level int) CubeMapState {
	if face < 0 || face >= NumCubeFaces || level < 0 || level >= s.numMipmaps {
		return s
	}
	dim := MipmapDimension(s.side, level)
	full, err := region.New2D(0, 0, dim, dim)
	if err != nil {
		return s
	}
	return s.MarkRegionDirty(face, level, full)
}

// MarkFaceDirty returns a new state with every level of the given face marked
// dirty. An out-of-range face returns s unchanged.
//
// Parameters:
//   - face: the cube face to dirty in full
//
// Returns:
//   - CubeMapState: the updated state
func (s CubeMapState) MarkFaceDirty(face CubeFace) CubeMapState {
	out := s
	for level := 0; level < s.numMipmaps; level++ {
		out = out.MarkLevelDirty(face, level)
	}
	return out
}

// MarkParametersDirty returns a new state with the sampler/parameter flag
// asserted. Idempotent.
func (s CubeMapState) MarkParametersDirty() CubeMapState {
	out := s
	out.parametersDirty = true
	return out
}

// Merge returns the pointwise union of s and other across every (face, level)
// key. Both states must describe a cube map of the same shape.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - CubeMapState: the merged state
//   - error: region.ErrIncompatibleMerge if the side lengths or mipmap counts differ
func (s CubeMapState) Merge(other CubeMapState) (CubeMapState, error) {
	if other.side != s.side || other.numMipmaps != s.numMipmaps {
		return CubeMapState{}, region.ErrIncompatibleMerge
	}
	out := s
	out.faces = s.faces.union(other.faces)
	out.parametersDirty = s.parametersDirty || other.parametersDirty
	return out, nil
}

// DirtyMipmap returns a copy of the dirty region at the given face and level,
// or nil if that slot is clean.
//
// Parameters:
//   - face: the cube face to read
//   - level: the mipmap level within that face
//
// Returns:
//   - *region.Region: the dirty region or nil
//   - error: ErrIndexOutOfRange if face or level is outside the declared shape
func (s CubeMapState) DirtyMipmap(face CubeFace, level int) (*region.Region, error) {
	if face < 0 || face >= NumCubeFaces || level < 0 || level >= s.numMipmaps {
		return nil, ErrIndexOutOfRange
	}
	return s.faces.get(faceLevel{face: face, level: level}), nil
}

// ParametersDirty reports whether non-byte-range texture parameters (sampler
// settings) have changed.
func (s CubeMapState) ParametersDirty() bool {
	return s.parametersDirty
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s CubeMapState) Empty() bool {
	return s.faces.empty() && !s.parametersDirty
}
