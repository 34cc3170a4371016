package builder

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/world"
)

// RandomBuilder walls in the map edges and scatters walls over the interior.
//
// Options: ratio. The interior receives width*height/ratio wall placements;
// repeated draws may land on the same cell.
type RandomBuilder struct {
	history
	rng *rand.Rand
}

// NewRandomBuilder creates a builder drawing from rng.
func NewRandomBuilder(rng *rand.Rand) *RandomBuilder {
	return &RandomBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *RandomBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "random", width, height)
	b.begin(width, height)
	b.build(opts[0].Value)
	b.finish()
	endBuild(span, &b.history, 0)
}

func (b *RandomBuilder) build(ratio int) {
	m := b.grid
	m.Fill(world.TileFloor)
	b.TakeSnapshot()

	b.stampHorizontalBorder()
	b.TakeSnapshot()

	b.stampVerticalBorder()
	b.TakeSnapshot()

	placements := m.Width * m.Height / ratio
	for i := 0; i < placements; i++ {
		x := randRange(b.rng, 1, m.Width-1)
		y := randRange(b.rng, 1, m.Height-1)
		m.Tiles[m.XYIdx(x, y)] = world.TileWall

		if i%10 == 0 {
			b.TakeSnapshot()
		}
	}
}

// stampHorizontalBorder walls the top and bottom rows.
func (b *RandomBuilder) stampHorizontalBorder() {
	m := b.grid
	for x := 0; x < m.Width; x++ {
		m.Tiles[m.XYIdx(x, 0)] = world.TileWall
		m.Tiles[m.XYIdx(x, m.Height-1)] = world.TileWall
	}
}

// stampVerticalBorder walls the left and right columns.
func (b *RandomBuilder) stampVerticalBorder() {
	m := b.grid
	for y := 0; y < m.Height; y++ {
		m.Tiles[m.XYIdx(0, y)] = world.TileWall
		m.Tiles[m.XYIdx(m.Width-1, y)] = world.TileWall
	}
}
