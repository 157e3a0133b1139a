package dirty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderStateZeroValueIsEmpty(t *testing.T) {
	var s ShaderState
	assert.True(t, s.Empty())
	assert.Empty(t, s.DirtyStages())
	assert.False(t, s.VersionDirty())
}

func TestShaderStateMarkStageDirty(t *testing.T) {
	s := NewShaderState()
	s = s.MarkStageDirty(ShaderStageFragment)
	s = s.MarkStageDirty(ShaderStageVertex)
	s = s.MarkStageDirty(ShaderStageVertex)

	assert.True(t, s.StageDirty(ShaderStageVertex))
	assert.True(t, s.StageDirty(ShaderStageFragment))
	assert.False(t, s.StageDirty(ShaderStageCompute))
	assert.Equal(t, []ShaderStage{ShaderStageVertex, ShaderStageFragment}, s.DirtyStages())
}

func TestShaderStateInvalidStageIsNoOp(t *testing.T) {
	s := NewShaderState()
	out := s.MarkStageDirty(ShaderStage(3))
	assert.True(t, out.Empty())
	out = s.MarkStageDirty(ShaderStage(-1))
	assert.True(t, out.Empty())
	assert.False(t, s.StageDirty(ShaderStage(99)))
}

func TestShaderStateIsImmutable(t *testing.T) {
	s := NewShaderState()
	updated := s.MarkStageDirty(ShaderStageCompute).MarkVersionDirty()
	assert.True(t, s.Empty())
	assert.False(t, updated.Empty())
	assert.True(t, updated.VersionDirty())
}

func TestShaderStateMerge(t *testing.T) {
	a := NewShaderState().MarkStageDirty(ShaderStageVertex)
	b := NewShaderState().MarkStageDirty(ShaderStageFragment).MarkVersionDirty()

	ab := a.Merge(b)
	ba := b.Merge(a)
	assert.Equal(t, ab.DirtyStages(), ba.DirtyStages())
	assert.Equal(t, ab.VersionDirty(), ba.VersionDirty())

	assert.Equal(t, []ShaderStage{ShaderStageVertex, ShaderStageFragment}, ab.DirtyStages())
	assert.True(t, ab.VersionDirty())

	// Merging with the empty state is the identity.
	ae := a.Merge(NewShaderState())
	assert.Equal(t, a.DirtyStages(), ae.DirtyStages())
	assert.Equal(t, a.VersionDirty(), ae.VersionDirty())
}
