package builder

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeongen/internal/world"
)

func TestRandomBuilderTenByTen(t *testing.T) {
	const seed = 99
	b := NewRandomBuilder(rand.New(rand.NewSource(seed)))
	b.BuildMap(context.Background(), 10, 10, []Option{{Name: "Ratio", Value: 4}})
	m := b.Map()

	for i := 0; i < 10; i++ {
		assert.Equal(t, world.TileWall, m.At(i, 0), "top row")
		assert.Equal(t, world.TileWall, m.At(i, 9), "bottom row")
		assert.Equal(t, world.TileWall, m.At(0, i), "left column")
		assert.Equal(t, world.TileWall, m.At(9, i), "right column")
	}

	// Replay the same draws to account for placements landing on the same cell.
	replay := rand.New(rand.NewSource(seed))
	placed := make(map[[2]int]bool)
	for i := 0; i < 10*10/4; i++ {
		x := 1 + replay.Intn(8)
		y := 1 + replay.Intn(8)
		placed[[2]int{x, y}] = true
	}

	interiorWalls := 0
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if m.At(x, y) == world.TileWall {
				interiorWalls++
				assert.True(t, placed[[2]int{x, y}], "unexpected wall at (%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, len(placed), interiorWalls)
	assert.LessOrEqual(t, interiorWalls, 25)
}

func TestRandomBuilderSnapshots(t *testing.T) {
	b := NewRandomBuilder(rand.New(rand.NewSource(1)))
	b.BuildMap(context.Background(), 10, 10, []Option{{Value: 4}})

	history := b.SnapshotHistory()
	// Floor fill, top and bottom rows, side columns, then placements 0, 10 and 20.
	require.Len(t, history, 6)
	assert.Equal(t, 100, history[0].Count(world.TileFloor))
	assert.Equal(t, 20, history[1].Count(world.TileWall))
	assert.Equal(t, 36, history[2].Count(world.TileWall))
}

func TestRandomBorderIsIdempotent(t *testing.T) {
	b := NewRandomBuilder(rand.New(rand.NewSource(1)))
	b.begin(12, 8)
	b.grid.Fill(world.TileFloor)

	b.stampHorizontalBorder()
	b.stampVerticalBorder()
	once := b.grid.Clone()

	b.stampHorizontalBorder()
	b.stampVerticalBorder()

	assert.Equal(t, once.Tiles, b.grid.Tiles)
	assert.Equal(t, 2*12+2*6, b.grid.Count(world.TileWall))
}
