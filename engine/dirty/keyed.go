// package dirty contains the immutable dirty-state descriptors that track
// which sub-ranges of a CPU-side resource have changed since a consumer last
// synchronized it. Every state shape shares the same algebra: create empty,
// record a local change, merge two states, read back. All mutating operations
// return a new value; none synchronize internally — the owning resource
// serializes access (see the resource package).
package dirty

import (
	"errors"
	"fmt"

	"github.com/lhkbob/ferox-sub010/engine/region"
)

// ErrIndexOutOfRange is returned by read accessors given a mipmap level, cube
// face, or layer index outside the declared shape. Write accessors with the
// same indices are silent no-ops instead: producers pre-compute level ranges
// optimistically and depend on tolerant writes, while a consumer reading an
// index that does not exist is always a bug.
var ErrIndexOutOfRange = errors.New("dirty: index out of range")

// MipmapDimension returns the dimension of one axis of a mipmap pyramid at
// the given level: max(1, base >> level).
//
// Parameters:
//   - base: the dimension at level 0
//   - level: the mipmap level
//
// Returns:
//   - int: the dimension at that level, never smaller than 1
func MipmapDimension(base, level int) int {
	return max(1, base>>level)
}

// regionTable is the shared keyed-region map underlying every region-tracking
// state shape: a mapping from a discrete key (mipmap level, face+level,
// layer+level) to the merged dirty Region for that key. The zero value is the
// empty table. Tables are immutable; updated and union copy.
type regionTable[K comparable] struct {
	regions map[K]region.Region
}

// updated returns a copy of t with r merged into the region stored at key,
// storing r itself if the key was absent. Callers guarantee r is constrained
// to the same extents and tag as any region already at the key, so the merge
// cannot fail; a failure here is a construction bug in the calling shape.
func (t regionTable[K]) updated(key K, r region.Region) regionTable[K] {
	out := t.clone()
	if existing, ok := out.regions[key]; ok {
		merged, err := r.Merge(&existing)
		if err != nil {
			panic(fmt.Sprintf("dirty: mismatched region shape at key %v: %v", key, err))
		}
		out.regions[key] = merged
	} else {
		out.regions[key] = r
	}
	return out
}

// union returns the pointwise merge of t and other: keys present on one side
// pass through unchanged, keys present on both are region-merged.
func (t regionTable[K]) union(other regionTable[K]) regionTable[K] {
	out := t.clone()
	for key, r := range other.regions {
		out = out.updated(key, r)
	}
	return out
}

// get returns a copy of the region at key, or nil if the key is clean.
func (t regionTable[K]) get(key K) *region.Region {
	if r, ok := t.regions[key]; ok {
		return &r
	}
	return nil
}

func (t regionTable[K]) empty() bool {
	return len(t.regions) == 0
}

func (t regionTable[K]) clone() regionTable[K] {
	out := regionTable[K]{regions: make(map[K]region.Region, len(t.regions)+1)}
	for key, r := range t.regions {
		out.regions[key] = r
	}
	return out
}
