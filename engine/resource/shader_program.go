package resource

import (
	"maps"
	"sync"

	"github.com/lhkbob/ferox-sub010/engine/dirty"
)

// shaderProgram is the implementation of the ShaderProgram interface.
type shaderProgram struct {
	mu *sync.RWMutex

	id   uint64
	name string

	sources         map[dirty.ShaderStage]string
	languageVersion string

	dirty dirty.ShaderState
}

// ShaderProgram is a mutable shader resource tracking which stages need
// recompilation since a consumer last synchronized it. Granularity is
// whole-stage: a one-character source edit dirties the entire stage. Setting
// a source for an invalid stage is a silent no-op. Thread-safe;
// TakeDirtyState is the single destructive read.
type ShaderProgram interface {
	Resource

	// StageSource retrieves the current source of one stage.
	//
	// Parameters:
	//   - stage: the stage to read
	//
	// Returns:
	//   - string: the source code
	//   - bool: true if the stage has a source attached
	StageSource(stage dirty.ShaderStage) (string, bool)

	// Sources returns a copy of all attached stage sources.
	//
	// Returns:
	//   - map[dirty.ShaderStage]string: stage to source code
	Sources() map[dirty.ShaderStage]string

	// SetStageSource attaches or replaces the source of one stage and marks
	// that stage dirty. An invalid stage is a no-op.
	//
	// Parameters:
	//   - stage: the stage to set
	//   - source: the new source code
	SetStageSource(stage dirty.ShaderStage, source string)

	// LanguageVersion returns the declared shading-language version string.
	LanguageVersion() string

	// SetLanguageVersion replaces the shading-language version and marks the
	// dirty state's version flag when the value actually changes.
	//
	// Parameters:
	//   - version: the new version string
	SetLanguageVersion(version string)

	// TakeDirtyState atomically returns the accumulated dirty state and
	// resets the slot to empty.
	//
	// Returns:
	//   - dirty.ShaderState: the snapshot of pending changes
	TakeDirtyState() dirty.ShaderState
}

var _ ShaderProgram = &shaderProgram{}

// NewShaderProgram creates a new empty ShaderProgram. Panics if gen is nil.
//
// Parameters:
//   - name: the program's human-readable identifier
//   - gen: the IDGenerator assigning the unique ID (must not be nil)
//   - options: functional options to further configure the program
//
// Returns:
//   - ShaderProgram: the newly created program
func NewShaderProgram(name string, gen IDGenerator, options ...ShaderProgramBuilderOption) ShaderProgram {
	if gen == nil {
		panic("resource: NewShaderProgram requires a non-nil IDGenerator")
	}
	p := &shaderProgram{
		mu:      &sync.RWMutex{},
		id:      gen.Next(),
		name:    name,
		sources: make(map[dirty.ShaderStage]string),
		dirty:   dirty.NewShaderState(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *shaderProgram) ID() uint64 {
	return p.id
}

func (p *shaderProgram) Name() string {
	return p.name
}

func (p *shaderProgram) StageSource(stage dirty.ShaderStage) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	src, ok := p.sources[stage]
	return src, ok
}

func (p *shaderProgram) Sources() map[dirty.ShaderStage]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[dirty.ShaderStage]string, len(p.sources))
	maps.Copy(out, p.sources)
	return out
}

func (p *shaderProgram) SetStageSource(stage dirty.ShaderStage, source string) {
	if stage < 0 || stage >= dirty.NumShaderStages {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[stage] = source
	p.dirty = p.dirty.MarkStageDirty(stage)
}

func (p *shaderProgram) LanguageVersion() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.languageVersion
}

func (p *shaderProgram) SetLanguageVersion(version string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if version == p.languageVersion {
		return
	}
	p.languageVersion = version
	p.dirty = p.dirty.MarkVersionDirty()
}

func (p *shaderProgram) TakeDirtyState() dirty.ShaderState {
	p.mu.Lock()
	defer p.mu.Unlock()
	taken := p.dirty
	p.dirty = dirty.NewShaderState()
	return taken
}
