package dirty

import (
	"maps"
	"slices"
)

// ShaderStage identifies one compilable stage of a shader program.
type ShaderStage int

const (
	// ShaderStageVertex is the vertex processing stage.
	ShaderStageVertex ShaderStage = iota

	// ShaderStageFragment is the fragment processing stage.
	ShaderStageFragment

	// ShaderStageCompute is the compute stage.
	ShaderStageCompute
)

// NumShaderStages is the number of valid ShaderStage values.
const NumShaderStages = 3

// ShaderState is the dirty descriptor for a shader program: the set of
// stages whose source changed since the last flush, plus a flag for a
// shading-language version change. Granularity is whole-stage — there are no
// byte ranges. ShaderState is immutable; every mutator returns a new value.
// The zero value is the empty state.
//
// MarkStageDirty given an invalid stage is a silent no-op.
type ShaderState struct {
	stages       map[ShaderStage]struct{}
	versionDirty bool
}

// NewShaderState creates an empty ShaderState.
//
// Returns:
//   - ShaderState: the empty state
func NewShaderState() ShaderState {
	return ShaderState{}
}

// MarkStageDirty returns a new state with the given stage marked dirty.
// Idempotent; an invalid stage returns s unchanged.
//
// Parameters:
//   - stage: the stage whose source changed
//
// Returns:
//   - ShaderState: the updated state
func (s ShaderState) MarkStageDirty(stage ShaderStage) ShaderState {
	if stage < 0 || stage >= NumShaderStages {
		return s
	}
	out := s.clone()
	out.stages[stage] = struct{}{}
	return out
}

// MarkVersionDirty returns a new state with the shading-language version flag
// asserted. Idempotent.
func (s ShaderState) MarkVersionDirty() ShaderState {
	out := s.clone()
	out.versionDirty = true
	return out
}

// Merge returns the union of s and other: the dirty stage sets are unioned
// and the version flag is set if it is set on either side.
//
// Parameters:
//   - other: the state to merge with
//
// Returns:
//   - ShaderState: the merged state
func (s ShaderState) Merge(other ShaderState) ShaderState {
	out := s.clone()
	for stage := range other.stages {
		out.stages[stage] = struct{}{}
	}
	out.versionDirty = s.versionDirty || other.versionDirty
	return out
}

// StageDirty reports whether the given stage's source changed. An invalid
// stage reads as clean.
//
// Parameters:
//   - stage: the stage to read
//
// Returns:
//   - bool: true if the stage is dirty
func (s ShaderState) StageDirty(stage ShaderStage) bool {
	_, ok := s.stages[stage]
	return ok
}

// DirtyStages returns the sorted set of stages whose source changed.
func (s ShaderState) DirtyStages() []ShaderStage {
	return slices.Sorted(maps.Keys(s.stages))
}

// VersionDirty reports whether the shading-language version changed.
func (s ShaderState) VersionDirty() bool {
	return s.versionDirty
}

// Empty reports whether no changes are pending. An empty state is
// interchangeable with an absent one.
func (s ShaderState) Empty() bool {
	return len(s.stages) == 0 && !s.versionDirty
}

func (s ShaderState) clone() ShaderState {
	out := ShaderState{
		stages:       make(map[ShaderStage]struct{}, len(s.stages)+1),
		versionDirty: s.versionDirty,
	}
	maps.Copy(out.stages, s.stages)
	return out
}
