package synchronizer

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
	"github.com/lhkbob/ferox-sub010/engine/profiler"
	"github.com/lhkbob/ferox-sub010/engine/resource"
)

// neverSynced marks a vertex buffer watermark whose GPU copy has never been
// written; the first pass always does a full upload.
const neverSynced = -1

// Synchronizer owns the consumer side of dirty tracking: a registry of
// resources and a Sync pass that takes each resource's pending changes and
// applies them through a Backend, transferring only the described sub-ranges.
// Take-based resources (textures, geometry, shaders) are drained with their
// single destructive read; vertex buffers are replayed from their change
// queues against a per-buffer watermark, falling back to a full upload when
// history was lost. Thread-safe for concurrent access.
type Synchronizer interface {
	// Register adds a resource to the registry so subsequent Sync passes
	// include it. Registering an already-registered resource is a no-op.
	//
	// Parameters:
	//   - res: the resource to track
	Register(res resource.Resource)

	// Unregister removes a resource from the registry by ID. Pending changes
	// on the resource are left untouched.
	//
	// Parameters:
	//   - id: the resource's unique ID
	Unregister(id uint64)

	// Resource retrieves a registered resource by ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the resource's unique ID
	//
	// Returns:
	//   - resource.Resource: the resource or nil
	Resource(id uint64) resource.Resource

	// Count returns the number of registered resources.
	Count() int

	// Sync runs one synchronization pass: every registered resource's pending
	// changes are taken (or replayed) and applied through the backend.
	// Per-resource work is fanned out over the worker pool; the pass blocks
	// until every resource has been processed.
	//
	// Returns:
	//   - error: the joined errors of all failed resource syncs, or nil
	Sync() error

	// Stop tears down the worker pool. The synchronizer must not be used
	// after Stop.
	Stop()
}

// synchronizer is the implementation of the Synchronizer interface.
type synchronizer struct {
	mu *sync.RWMutex

	backend   Backend
	resources map[uint64]resource.Resource

	// watermarks holds the last fully applied change-queue version per
	// vertex buffer ID. Not shared with other synchronizers: each consumer
	// maintains its own view of the queues.
	watermarks map[uint64]int

	pool    worker.DynamicWorkerPool
	workers int

	prof *profiler.Profiler
}

var _ Synchronizer = &synchronizer{}

// NewSynchronizer creates a Synchronizer applying changes through the given
// backend. Panics if backend is nil.
//
// Parameters:
//   - backend: the GPU-facing backend to drive (must not be nil)
//   - options: functional options to further configure the synchronizer
//
// Returns:
//   - Synchronizer: the newly created synchronizer
func NewSynchronizer(backend Backend, options ...SynchronizerBuilderOption) Synchronizer {
	if backend == nil {
		panic("synchronizer: NewSynchronizer requires a non-nil Backend")
	}

	s := &synchronizer{
		mu:         &sync.RWMutex{},
		backend:    backend,
		resources:  make(map[uint64]resource.Resource),
		watermarks: make(map[uint64]int),
	}
	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithWorkers can override the
	// default.
	s.workers = common.Coalesce(s.workers, max(runtime.NumCPU()-1, 1))
	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)

	return s
}

func (s *synchronizer) Register(res resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.resources[res.ID()]; exists {
		return
	}
	s.resources[res.ID()] = res
	if _, ok := res.(resource.VertexBuffer); ok {
		s.watermarks[res.ID()] = neverSynced
	}
}

func (s *synchronizer) Unregister(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resources, id)
	delete(s.watermarks, id)
}

func (s *synchronizer) Resource(id uint64) resource.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resources[id]
}

func (s *synchronizer) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resources)
}

func (s *synchronizer) Sync() error {
	s.mu.RLock()
	targets := make([]resource.Resource, 0, len(s.resources))
	for _, res := range s.resources {
		targets = append(targets, res)
	}
	s.mu.RUnlock()

	// Fan each resource's sync out to the pool. Workers are reused across
	// passes; a WaitGroup provides the per-pass barrier since pool.Wait()
	// blocks until workers idle-exit, which is unsuitable for repeated passes.
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs []error
	totalRegions := 0

	for i, res := range targets {
		wg.Add(1)
		s.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()

				applied, err := s.syncResource(res)

				errMu.Lock()
				totalRegions += applied
				if err != nil {
					errs = append(errs, fmt.Errorf("sync %q (id %d): %w", res.Name(), res.ID(), err))
				}
				errMu.Unlock()
				return nil, nil
			},
		})
	}
	wg.Wait()

	if s.prof != nil {
		s.prof.AddRegions(totalRegions)
		s.prof.Tick()
	}
	return errors.Join(errs...)
}

func (s *synchronizer) Stop() {
	s.pool.Stop()
}

// syncResource drains one resource's pending changes into the backend and
// returns how many regions/ranges were applied.
func (s *synchronizer) syncResource(res resource.Resource) (int, error) {
	switch r := res.(type) {
	case resource.Texture:
		return s.syncTexture(r)
	case resource.CubeMap:
		return s.syncCubeMap(r)
	case resource.ArrayTexture:
		return s.syncArrayTexture(r)
	case resource.Geometry:
		return s.syncGeometry(r)
	case resource.ShaderProgram:
		return s.syncShaderProgram(r)
	case resource.VertexBuffer:
		return s.syncVertexBuffer(r)
	default:
		return 0, fmt.Errorf("unsupported resource type %T", res)
	}
}

func (s *synchronizer) syncTexture(tex resource.Texture) (int, error) {
	state := tex.TakeDirtyState()
	if state.Empty() {
		return 0, nil
	}

	applied := 0
	for level := 0; level < state.NumMipmaps(); level++ {
		r, err := state.DirtyMipmap(level)
		if err != nil {
			return applied, err
		}
		if r == nil {
			continue
		}
		if err := s.backend.UploadTextureRegion(tex, *r); err != nil {
			return applied, err
		}
		applied++
	}
	if state.ParametersDirty() {
		if err := s.backend.UploadSamplerParameters(tex, tex.SamplerParameters()); err != nil {
			return applied, err
		}
	}
	return applied, nil
}

func (s *synchronizer) syncCubeMap(cm resource.CubeMap) (int, error) {
	state := cm.TakeDirtyState()
	if state.Empty() {
		return 0, nil
	}

	applied := 0
	for face := dirty.CubeFace(0); face < dirty.NumCubeFaces; face++ {
		for level := 0; level < state.NumMipmaps(); level++ {
			r, err := state.DirtyMipmap(face, level)
			if err != nil {
				return applied, err
			}
			if r == nil {
				continue
			}
			if err := s.backend.UploadTextureRegion(cm, *r); err != nil {
				return applied, err
			}
			applied++
		}
	}
	if state.ParametersDirty() {
		if err := s.backend.UploadSamplerParameters(cm, cm.SamplerParameters()); err != nil {
			return applied, err
		}
	}
	return applied, nil
}

func (s *synchronizer) syncArrayTexture(at resource.ArrayTexture) (int, error) {
	state := at.TakeDirtyState()
	if state.Empty() {
		return 0, nil
	}

	applied := 0
	for layer := 0; layer < state.NumLayers(); layer++ {
		for level := 0; level < state.NumMipmaps(); level++ {
			r, err := state.DirtyMipmap(layer, level)
			if err != nil {
				return applied, err
			}
			if r == nil {
				continue
			}
			if err := s.backend.UploadTextureRegion(at, *r); err != nil {
				return applied, err
			}
			applied++
		}
	}
	if state.ParametersDirty() {
		if err := s.backend.UploadSamplerParameters(at, at.SamplerParameters()); err != nil {
			return applied, err
		}
	}
	return applied, nil
}

func (s *synchronizer) syncGeometry(geom resource.Geometry) (int, error) {
	state := geom.TakeDirtyState()
	if state.Empty() {
		return 0, nil
	}

	applied := 0
	// Removals first so a backend re-adding a name sees a clean slot.
	for _, name := range state.RemovedAttributes() {
		if err := s.backend.DetachAttribute(geom, name); err != nil {
			return applied, err
		}
	}
	modified := state.ModifiedAttributes()
	for _, name := range sortedKeys(modified) {
		if err := s.backend.UploadAttribute(geom, name, modified[name]); err != nil {
			return applied, err
		}
		applied++
	}
	if idx := state.DirtyIndices(); idx != nil {
		if err := s.backend.UploadIndices(geom, *idx); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

func (s *synchronizer) syncShaderProgram(prog resource.ShaderProgram) (int, error) {
	state := prog.TakeDirtyState()
	if state.Empty() {
		return 0, nil
	}

	// A version change invalidates every stage at once.
	if state.VersionDirty() {
		if err := s.backend.RelinkShader(prog); err != nil {
			return 0, err
		}
		return 1, nil
	}

	applied := 0
	for _, stage := range state.DirtyStages() {
		source, ok := prog.StageSource(stage)
		if !ok {
			continue
		}
		if err := s.backend.CompileShaderStage(prog, stage, source); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

func (s *synchronizer) syncVertexBuffer(buf resource.VertexBuffer) (int, error) {
	s.mu.RLock()
	watermark, tracked := s.watermarks[buf.ID()]
	s.mu.RUnlock()
	if !tracked {
		watermark = neverSynced
	}

	// Capture the version before replaying: changes pushed mid-replay stay
	// newer than the stored watermark and are picked up next pass.
	version := buf.Version()
	if watermark >= version {
		return 0, nil
	}

	applied := 0
	if watermark == neverSynced || buf.HasLostChanges(watermark) {
		if watermark != neverSynced {
			log.Printf("[Synchronizer] buffer %q (id %d) lost changes behind version %d, re-uploading in full",
				buf.Name(), buf.ID(), watermark)
		}
		if err := s.backend.UploadFullBuffer(buf); err != nil {
			return 0, err
		}
		applied++
	} else {
		for _, r := range buf.ChangesSince(watermark) {
			if err := s.backend.UploadBufferRange(buf, r); err != nil {
				return applied, err
			}
			applied++
		}
	}

	s.mu.Lock()
	s.watermarks[buf.ID()] = version
	s.mu.Unlock()
	return applied, nil
}

// sortedKeys returns the map's keys in sorted order so backend calls happen
// in a deterministic sequence across passes.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
