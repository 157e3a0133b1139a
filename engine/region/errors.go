package region

import "errors"

// ErrInvalidDimension is returned by constructors given a size, length, or
// maximum extent smaller than 1, or a negative layer/level tag.
var ErrInvalidDimension = errors.New("region: dimension must be at least 1")

// ErrIncompatibleMerge is returned when two values with mismatched shapes are
// merged: different maximum extents, or different (layer, level) tags.
var ErrIncompatibleMerge = errors.New("region: incompatible merge")
