package region

import "math"

// unbounded is the max extent assigned by the New1D/New2D/New3D constructors.
// Regions created by producers are constrained to real dimensions later, when
// a dirty-state shape knows the extents of the level being marked.
const unbounded = math.MaxInt

// Region is an immutable axis-aligned box in up to three dimensions, clamped
// to a fixed maximum extent per axis. The origin is the lower-left corner of
// the image data: x extends right, y extends up, z extends outward. A Region
// optionally carries a (layer, level) tag identifying which array layer and
// mipmap level it describes; the tag groups regions and is never merged
// across — merging two Regions with different tags fails with
// ErrIncompatibleMerge.
//
// For every axis the clamp invariant holds: 0 <= offset and
// offset + size <= maxExtent. All operations return new values; a Region is
// never mutated in place.
type Region struct {
	x, y, z                      int
	width, height, depth         int
	maxWidth, maxHeight, maxDepth int
	layer, level                 int
}

// New1D creates a Region covering [x, x+width) on the first axis with the
// remaining axes collapsed to a single unit. Max extents are unbounded until
// the Region is constrained via Constrain.
//
// Parameters:
//   - x: offset on the first axis
//   - width: extent on the first axis, must be at least 1
//
// Returns:
//   - Region: the new region
//   - error: ErrInvalidDimension if width < 1
func New1D(x, width int) (Region, error) {
	return New3D(x, 0, 0, width, 1, 1)
}

// New2D creates a Region covering [x, x+width) x [y, y+height) with the third
// axis collapsed to a single unit. Max extents are unbounded until the Region
// is constrained via Constrain.
//
// Parameters:
//   - x: offset on the first axis
//   - y: offset on the second axis
//   - width: extent on the first axis, must be at least 1
//   - height: extent on the second axis, must be at least 1
//
// Returns:
//   - Region: the new region
//   - error: ErrInvalidDimension if width or height < 1
func New2D(x, y, width, height int) (Region, error) {
	return New3D(x, y, 0, width, height, 1)
}

// New3D creates a Region with the given offsets and extents on all three
// axes. Max extents are unbounded until the Region is constrained via
// Constrain. Offsets are clamped to be non-negative.
//
// Parameters:
//   - x, y, z: offsets per axis
//   - width, height, depth: extents per axis, each must be at least 1
//
// Returns:
//   - Region: the new region
//   - error: ErrInvalidDimension if any extent < 1
func New3D(x, y, z, width, height, depth int) (Region, error) {
	return newRegion(x, y, z, width, height, depth, unbounded, unbounded, unbounded, 0, 0)
}

// Constrain creates a copy of r clamped to the given maximum extents and
// tagged with the given layer and mipmap level. Dirty-state shapes use this
// to pin a producer-supplied region to the real dimensions of the level being
// marked; producers should use the New* constructors instead.
//
// Parameters:
//   - r: the region to constrain
//   - maxWidth, maxHeight, maxDepth: maximum extents per axis, each must be at least 1
//   - layer: the array layer (or cube face) this region belongs to, must be >= 0
//   - level: the mipmap level this region belongs to, must be >= 0
//
// Returns:
//   - Region: the constrained, tagged region
//   - error: ErrInvalidDimension if any max extent < 1 or layer/level < 0
func Constrain(r Region, maxWidth, maxHeight, maxDepth, layer, level int) (Region, error) {
	return newRegion(r.x, r.y, r.z, r.width, r.height, r.depth, maxWidth, maxHeight, maxDepth, layer, level)
}

func newRegion(x, y, z, width, height, depth, maxWidth, maxHeight, maxDepth, layer, level int) (Region, error) {
	if width < 1 || height < 1 || depth < 1 {
		return Region{}, ErrInvalidDimension
	}
	if maxWidth < 1 || maxHeight < 1 || maxDepth < 1 {
		return Region{}, ErrInvalidDimension
	}
	if layer < 0 || level < 0 {
		return Region{}, ErrInvalidDimension
	}

	r := Region{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		maxDepth:  maxDepth,
		layer:     layer,
		level:     level,
	}

	// Clamp the offset into [0, max-1] per axis, then the size so the box
	// never extends past the max extent.
	r.x = max(0, min(x, maxWidth-1))
	r.y = max(0, min(y, maxHeight-1))
	r.z = max(0, min(z, maxDepth-1))

	r.width = min(width, maxWidth-r.x)
	r.height = min(height, maxHeight-r.y)
	r.depth = min(depth, maxDepth-r.z)

	return r, nil
}

// X returns the offset on the first axis, within [0, maxWidth-1].
func (r Region) X() int { return r.x }

// Y returns the offset on the second axis, within [0, maxHeight-1].
func (r Region) Y() int { return r.y }

// Z returns the offset on the third axis, within [0, maxDepth-1].
func (r Region) Z() int { return r.z }

// Width returns the extent on the first axis. X() + Width() never exceeds the
// region's maximum width.
func (r Region) Width() int { return r.width }

// Height returns the extent on the second axis. Y() + Height() never exceeds
// the region's maximum height.
func (r Region) Height() int { return r.height }

// Depth returns the extent on the third axis. Z() + Depth() never exceeds the
// region's maximum depth.
func (r Region) Depth() int { return r.depth }

// Layer returns the array layer (or cube face index) tag.
func (r Region) Layer() int { return r.layer }

// Level returns the mipmap level tag.
func (r Region) Level() int { return r.level }

// Merge returns the smallest bounding box containing both r and other,
// reclamped to r's maximum extents. A nil other is the identity: r itself is
// returned. Merge is idempotent, commutative, and associative.
//
// Parameters:
//   - other: the region to merge with, or nil
//
// Returns:
//   - Region: the union bounding box
//   - error: ErrIncompatibleMerge if the two regions have different maximum
//     extents or different (layer, level) tags
func (r Region) Merge(other *Region) (Region, error) {
	if other == nil {
		return r, nil
	}
	if other.layer != r.layer || other.level != r.level {
		return Region{}, ErrIncompatibleMerge
	}
	if other.maxWidth != r.maxWidth || other.maxHeight != r.maxHeight || other.maxDepth != r.maxDepth {
		return Region{}, ErrIncompatibleMerge
	}
	return r.MergeBounds(other.x, other.y, other.z, other.width, other.height, other.depth)
}

// MergeBounds returns the smallest bounding box containing both r and the box
// [(x, y, z), (x+width, y+height, z+depth)), reclamped to r's maximum
// extents. This is the convenience form of Merge for call sites that have raw
// offsets and sizes instead of a constructed Region.
//
// Parameters:
//   - x, y, z: offsets of the box to merge in
//   - width, height, depth: extents of the box, each must be at least 1
//
// Returns:
//   - Region: the union bounding box
//   - error: ErrInvalidDimension if any extent < 1
func (r Region) MergeBounds(x, y, z, width, height, depth int) (Region, error) {
	if width < 1 || height < 1 || depth < 1 {
		return Region{}, ErrInvalidDimension
	}

	minX := min(x, r.x)
	minY := min(y, r.y)
	minZ := min(z, r.z)
	maxX := max(x+width, r.x+r.width)
	maxY := max(y+height, r.y+r.height)
	maxZ := max(z+depth, r.z+r.depth)

	return newRegion(minX, minY, minZ, maxX-minX, maxY-minY, maxZ-minZ,
		r.maxWidth, r.maxHeight, r.maxDepth, r.layer, r.level)
}
