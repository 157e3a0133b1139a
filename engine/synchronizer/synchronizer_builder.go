package synchronizer

import (
	"github.com/lhkbob/ferox-sub010/engine/profiler"
)

// SynchronizerBuilderOption is a functional option for configuring a Synchronizer via NewSynchronizer.
type SynchronizerBuilderOption func(*synchronizer)

// WithWorkers is an option builder that sets the worker pool size for the
// per-resource sync fan-out. Defaults to NumCPU-1 (minimum 1). Values below 1
// are ignored.
//
// Parameters:
//   - workers: the number of pooled workers
//
// Returns:
//   - SynchronizerBuilderOption: a function that applies the workers option to a synchronizer
func WithWorkers(workers int) SynchronizerBuilderOption {
	return func(s *synchronizer) {
		if workers >= 1 {
			s.workers = workers
		}
	}
}

// WithProfiler is an option builder that attaches a Profiler. When set, each
// Sync pass reports its applied region count and ticks the profiler.
//
// Parameters:
//   - prof: the profiler to attach
//
// Returns:
//   - SynchronizerBuilderOption: a function that applies the profiler option to a synchronizer
func WithProfiler(prof *profiler.Profiler) SynchronizerBuilderOption {
	return func(s *synchronizer) {
		s.prof = prof
	}
}
