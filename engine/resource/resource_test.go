package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDGeneratorIsUniqueUnderConcurrency(t *testing.T) {
	gen := NewSequentialIDGenerator()

	const goroutines = 8
	const perGoroutine = 100

	var mu sync.Mutex
	seen := make(map[uint64]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				id := gen.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}

func TestSequentialIDGeneratorStartsAtOne(t *testing.T) {
	gen := NewSequentialIDGenerator()
	assert.Equal(t, uint64(1), gen.Next())
	assert.Equal(t, uint64(2), gen.Next())
}
