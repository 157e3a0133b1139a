package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhkbob/ferox-sub010/engine/dirty"
)

func TestNewShaderProgramPanicsOnNilGenerator(t *testing.T) {
	assert.Panics(t, func() {
		NewShaderProgram("orphan", nil)
	})
}

func TestShaderProgramStageSources(t *testing.T) {
	p := NewShaderProgram("pbr", NewSequentialIDGenerator())

	_, ok := p.StageSource(dirty.ShaderStageVertex)
	assert.False(t, ok)

	p.SetStageSource(dirty.ShaderStageVertex, "@vertex fn main() {}")
	p.SetStageSource(dirty.ShaderStageFragment, "@fragment fn main() {}")

	src, ok := p.StageSource(dirty.ShaderStageVertex)
	require.True(t, ok)
	assert.Equal(t, "@vertex fn main() {}", src)
	assert.Len(t, p.Sources(), 2)

	taken := p.TakeDirtyState()
	assert.Equal(t, []dirty.ShaderStage{dirty.ShaderStageVertex, dirty.ShaderStageFragment}, taken.DirtyStages())
	assert.False(t, taken.VersionDirty())
}

func TestShaderProgramInvalidStageIsNoOp(t *testing.T) {
	p := NewShaderProgram("pbr", NewSequentialIDGenerator())
	p.SetStageSource(dirty.ShaderStage(7), "nope")
	assert.Empty(t, p.Sources())
	assert.True(t, p.TakeDirtyState().Empty())
}

func TestShaderProgramLanguageVersion(t *testing.T) {
	p := NewShaderProgram("pbr", NewSequentialIDGenerator(), WithLanguageVersion("wgsl-1"))
	assert.Equal(t, "wgsl-1", p.LanguageVersion())
	// The builder option is initial configuration, not a tracked change.
	assert.True(t, p.TakeDirtyState().Empty())

	p.SetLanguageVersion("wgsl-2")
	taken := p.TakeDirtyState()
	assert.True(t, taken.VersionDirty())
	assert.Empty(t, taken.DirtyStages())

	// Setting the same version again changes nothing.
	p.SetLanguageVersion("wgsl-2")
	assert.True(t, p.TakeDirtyState().Empty())
}

func TestShaderProgramTakeDirtyStateResets(t *testing.T) {
	p := NewShaderProgram("pbr", NewSequentialIDGenerator())
	p.SetStageSource(dirty.ShaderStageCompute, "@compute fn main() {}")

	assert.False(t, p.TakeDirtyState().Empty())
	assert.True(t, p.TakeDirtyState().Empty())
}
