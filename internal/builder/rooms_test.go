package builder

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeongen/internal/world"
)

func TestRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := NewRoomsBuilder(rand.New(rand.NewSource(seed)))
		b.BuildMap(context.Background(), 80, 50, []Option{{Value: 30}, {Value: 4}, {Value: 12}})

		rooms := b.Rooms()
		require.NotEmpty(t, rooms, "seed %d", seed)
		assertNoOverlap(t, rooms)
		assertSortedByLeftEdge(t, rooms)
	}
}

func TestRoomsAreConnected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := NewRoomsBuilder(rand.New(rand.NewSource(seed)))
		b.BuildMap(context.Background(), 60, 40, []Option{{Value: 10}, {Value: 6}, {Value: 10}})

		m := b.Map()
		rooms := b.Rooms()
		x, y := rooms[len(rooms)-1].Center()
		assertFloorConnected(t, m, m.XYIdx(x, y))
	}
}

func TestRoomsStayInsideBorder(t *testing.T) {
	b := NewRoomsBuilder(rand.New(rand.NewSource(8)))
	b.BuildMap(context.Background(), 40, 30, []Option{{Value: 30}, {Value: 6}, {Value: 10}})
	m := b.Map()

	for x := 0; x < m.Width; x++ {
		assert.Equal(t, world.TileWall, m.At(x, 0))
		assert.Equal(t, world.TileWall, m.At(x, m.Height-1))
	}
	for y := 0; y < m.Height; y++ {
		assert.Equal(t, world.TileWall, m.At(0, y))
		assert.Equal(t, world.TileWall, m.At(m.Width-1, y))
	}
}

func TestRoomsSnapshotCount(t *testing.T) {
	b := NewRoomsBuilder(rand.New(rand.NewSource(4)))
	b.BuildMap(context.Background(), 60, 40, []Option{{Value: 8}, {Value: 6}, {Value: 10}})

	// Initial fill, one per room, two per corridor pair.
	want := 1 + 3*len(b.Rooms())
	assert.Len(t, b.SnapshotHistory(), want)
}

func TestRoomsCountsRejectedAttempts(t *testing.T) {
	// A map too small for any room still finishes after the attempts run out.
	b := NewRoomsBuilder(rand.New(rand.NewSource(4)))
	b.BuildMap(context.Background(), 10, 10, []Option{{Value: 30}, {Value: 10}, {Value: 15}})

	assert.Empty(t, b.Rooms())
	assert.Len(t, b.SnapshotHistory(), 1)
	assert.Zero(t, b.Map().Count(world.TileFloor))
}

func TestRoomsEqualMinMaxSize(t *testing.T) {
	b := NewRoomsBuilder(rand.New(rand.NewSource(2)))
	b.BuildMap(context.Background(), 60, 40, []Option{{Value: 10}, {Value: 10}, {Value: 10}})

	for _, r := range b.Rooms() {
		assert.Equal(t, 10, r.Width())
		assert.Equal(t, 10, r.Height())
	}
}
