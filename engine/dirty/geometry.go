package dirty

import (
	"maps"
	"slices"

	"github.com/lhkbob/ferox-sub010/engine/region"
)

// GeometryState is the dirty descriptor for a multi-attribute geometry
// resource. It tracks three disjoint views over attribute names — added,
// removed, and modified-with-range — plus one optional BufferRange for the
// index buffer. A name is never simultaneously added and removed.
//
// Within a single state, ordering is resolved at record time: RemoveAttribute
// wins over any earlier add or modification of the same name, and a later
// UpdateAttribute with isNew=true re-adds the name and clears its removed
// mark. Across two batches, Merge is order-free: removal dominates (see
// Merge). GeometryState is immutable; every mutator returns a new value. The
// zero value is the empty state.
type GeometryState struct {
	added    map[string]struct{}
	removed  map[string]struct{}
	modified map[string]region.BufferRange

	indices *region.BufferRange
}

// NewGeometryState creates an empty GeometryState.
//
// Returns:
//   - GeometryState: the empty state
func NewGeometryState() GeometryState {
	return GeometryState{}
}

// UpdateAttribute returns a new state recording that [offset, offset+length)
// of the named attribute's buffer changed. With isNew=true the name is also
// marked added and any removed mark on it is cleared — a set-remove-set churn
// within one update cycle nets out to "added".
//
// Parameters:
//   - name: the attribute name
//   - offset: the first changed element, clamped to >= 0
//   - length: the number of changed elements, must be at least 1
//   - isNew: true if the attribute was (re-)attached rather than modified in place
//
// Returns:
//   - GeometryState: the updated state
//   - error: region.ErrInvalidDimension if length < 1
func (s GeometryState) UpdateAttribute(name string, offset, length int, isNew bool) (GeometryState, error) {
	r, err := region.NewBufferRange(offset, length)
	if err != nil {
		return GeometryState{}, err
	}

	out := s.clone()
	if isNew {
		out.added[name] = struct{}{}
		delete(out.removed, name)
	}
	if existing, ok := out.modified[name]; ok {
		out.modified[name] = r.Merge(&existing)
	} else {
		out.modified[name] = r
	}
	return out, nil
}

// RemoveAttribute returns a new state recording that the named attribute was
// detached. The name is dropped from the added set and the modified map;
// removal wins over anything recorded earlier in the same update cycle.
//
// Parameters:
//   - name: the attribute name
//
// Returns:
//   - GeometryState: the updated state
func (s GeometryState) RemoveAttribute(name string) GeometryState {
	out := s.clone()
	out.removed[name] = struct{}{}
	delete(out.added, name)
	delete(out.modified, name)
	return out
}

// MarkIndicesDirty returns a new state with [offset, offset+length) merged
// into the index buffer's dirty range.
//
// Parameters:
//   - offset: the first changed index, clamped to >= 0
//   - length: the number of changed indices, must be at least 1
//
// Returns:
//   - GeometryState: the updated state
//   - error: region.ErrInvalidDimension if length < 1
func (s GeometryState) MarkIndicesDirty(offset, length int) (GeometryState, error) {
	r, err := region.NewBufferRange(offset, length)
	if err != nil {
		return GeometryState{}, err
	}
	out := s.clone()
	merged := r.Merge(s.indices)
	out.indices = &merged
	return out, nil
}

// Merge returns the order-free union of s and other:
//
//   - removed is the union of both removed sets;
//   - added is the union of both added sets minus removed;
//   - modified is the pointwise range union minus removed;
//   - the index ranges are union-merged.
//
// Removal dominates a stale add across batches. Resurrecting a removed
// attribute is an immediate-path behavior only: UpdateAttribute with
// isNew=true clears the removed mark before states are ever merged, which
// keeps Merge commutative and associative.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - GeometryState: the merged state
func (s GeometryState) Merge(other GeometryState) GeometryState {
	out := s.clone()

	for name := range other.removed {
		out.removed[name] = struct{}{}
	}
	for name := range other.added {
		out.added[name] = struct{}{}
	}
	for name, r := range other.modified {
		if existing, ok := out.modified[name]; ok {
			out.modified[name] = r.Merge(&existing)
		} else {
			out.modified[name] = r
		}
	}
	for name := range out.removed {
		delete(out.added, name)
		delete(out.modified, name)
	}

	out.indices = s.indices
	if other.indices != nil {
		merged := other.indices.Merge(s.indices)
		out.indices = &merged
	}
	return out
}

// AddedAttributes returns the sorted names of attributes attached since the
// last flush.
func (s GeometryState) AddedAttributes() []string {
	return slices.Sorted(maps.Keys(s.added))
}

// RemovedAttributes returns the sorted names of attributes detached since the
// last flush.
func (s GeometryState) RemovedAttributes() []string {
	return slices.Sorted(maps.Keys(s.removed))
}

// ModifiedAttributes returns a copy of the modified map: attribute name to
// the merged dirty range of its buffer.
func (s GeometryState) ModifiedAttributes() map[string]region.BufferRange {
	out := make(map[string]region.BufferRange, len(s.modified))
	maps.Copy(out, s.modified)
	return out
}

// DirtyIndices returns a copy of the index buffer's dirty range, or nil if
// the indices are clean.
func (s GeometryState) DirtyIndices() *region.BufferRange {
	if s.indices == nil {
		return nil
	}
	r := *s.indices
	return &r
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s GeometryState) Empty() bool {
	return len(s.added) == 0 && len(s.removed) == 0 && len(s.modified) == 0 && s.indices == nil
}

func (s GeometryState) clone() GeometryState {
	out := GeometryState{
		added:    make(map[string]struct{}, len(s.added)+1),
		removed:  make(map[string]struct{}, len(s.removed)+1),
		modified: make(map[string]region.BufferRange, len(s.modified)+1),
		indices:  s.indices,
	}
	maps.Copy(out.added, s.added)
	maps.Copy(out.removed, s.removed)
	maps.Copy(out.modified, s.modified)
	return out
}
