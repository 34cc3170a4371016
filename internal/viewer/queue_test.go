package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeongen/internal/world"
)

func TestQueuePopsInOrder(t *testing.T) {
	frames := make([]*world.Grid, 3)
	for i := range frames {
		frames[i] = world.NewGrid(i+1, 1)
	}
	q := NewQueue(frames)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 3, q.Total())
	for i := 0; i < 3; i++ {
		g, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i+1, g.Width, "frame %d out of order", i)
		assert.Equal(t, i+1, q.Shown())
	}

	assert.True(t, q.Empty())
	g, ok := q.Pop()
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestQueueEmptyHistory(t *testing.T) {
	q := NewQueue(nil)
	assert.True(t, q.Empty())
	assert.Zero(t, q.Total())
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "finished", StateFinished.String())
	assert.Equal(t, "unknown", State(99).String())
}
