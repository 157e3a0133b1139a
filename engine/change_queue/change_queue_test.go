package change_queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushIncrementsVersion(t *testing.T) {
	q := NewChangeQueue[string]()
	assert.Equal(t, 0, q.Version())

	assert.Equal(t, 1, q.Push("a"))
	assert.Equal(t, 2, q.Push("b"))
	assert.Equal(t, 2, q.Version())
}

func TestChangesSinceReturnsPushOrder(t *testing.T) {
	q := NewChangeQueue[string]()
	q.Push("a")
	q.Push("b")
	q.Push("c")

	assert.Equal(t, []string{"a", "b", "c"}, q.ChangesSince(0))
	assert.Equal(t, []string{"c"}, q.ChangesSince(2))
	assert.Empty(t, q.ChangesSince(3))
	assert.Empty(t, q.ChangesSince(10))
}

func TestIsStale(t *testing.T) {
	q := NewChangeQueue[int]()
	assert.False(t, q.IsStale(0))

	q.Push(42)
	assert.True(t, q.IsStale(0))
	assert.False(t, q.IsStale(1))
}

func TestLatestChange(t *testing.T) {
	q := NewChangeQueue[int]()
	_, ok := q.LatestChange()
	assert.False(t, ok)

	q.Push(1)
	q.Push(2)
	latest, ok := q.LatestChange()
	require.True(t, ok)
	assert.Equal(t, 2, latest)
}

func TestEvictionCapsRetainedHistory(t *testing.T) {
	q := NewChangeQueue[int]()
	for i := 0; i < MaxChangeQueueSize+5; i++ {
		q.Push(i)
	}

	assert.Equal(t, MaxChangeQueueSize+5, q.Version())
	// Only the newest MaxChangeQueueSize pushes are replayable.
	assert.Len(t, q.ChangesSince(0), MaxChangeQueueSize)
}

func TestHasLostChanges(t *testing.T) {
	q := NewChangeQueue[int]()
	assert.False(t, q.HasLostChanges(0))

	for i := 0; i < MaxChangeQueueSize+5; i++ {
		q.Push(i)
	}

	assert.True(t, q.HasLostChanges(0))
	assert.False(t, q.HasLostChanges(q.Version()-1))
	assert.False(t, q.HasLostChanges(q.Version()-MaxChangeQueueSize))
	assert.True(t, q.HasLostChanges(q.Version()-MaxChangeQueueSize-1))
}

func TestFullRetainedReplayHasNoLoss(t *testing.T) {
	q := NewChangeQueue[int]()
	for i := 0; i < MaxChangeQueueSize; i++ {
		q.Push(i)
	}
	assert.False(t, q.HasLostChanges(0))
	assert.Len(t, q.ChangesSince(0), MaxChangeQueueSize)
}

func TestClearBumpsVersionOnce(t *testing.T) {
	q := NewChangeQueue[int]()
	q.Push(1)
	q.Push(2)

	v := q.Clear()
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, q.Version())
	assert.Empty(t, q.ChangesSince(0))

	// A consumer behind the clear is stale; once something new is pushed it
	// also observes that history was lost.
	assert.True(t, q.IsStale(2))
	q.Push(9)
	assert.True(t, q.HasLostChanges(2))
}
