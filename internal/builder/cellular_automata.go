package builder

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/world"
)

// CellularAutomataBuilder grows caves from random noise.
//
// Options: floor percent (chance an interior cell starts as floor),
// iterations. After smoothing, every area not reachable from the start point
// is filled in.
type CellularAutomataBuilder struct {
	history
	rng     *rand.Rand
	exit    int
	hasExit bool
}

// NewCellularAutomataBuilder creates a builder drawing from rng.
func NewCellularAutomataBuilder(rng *rand.Rand) *CellularAutomataBuilder {
	return &CellularAutomataBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *CellularAutomataBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "cellular_automata", width, height)
	b.begin(width, height)
	b.build(float64(opts[0].Value)/100, opts[1].Value)
	b.finish()
	endBuild(span, &b.history, 0)
}

// Exit implements ExitFinder.
func (b *CellularAutomataBuilder) Exit() (int, bool) {
	return b.exit, b.hasExit
}

func (b *CellularAutomataBuilder) build(floorChance float64, iterations int) {
	m := b.grid
	m.Fill(world.TileWall)
	b.TakeSnapshot()

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if b.rng.Float64() < floorChance {
				m.Tiles[m.XYIdx(x, y)] = world.TileFloor
			} else {
				m.Tiles[m.XYIdx(x, y)] = world.TileWall
			}
		}
	}
	b.TakeSnapshot()

	for i := 0; i < iterations; i++ {
		b.step()
		b.TakeSnapshot()
	}

	b.exit, b.hasExit = world.PruneUnreachable(m, b.startIndex(), world.DefaultPruneDepth)
	b.TakeSnapshot()
}

// step applies one generation of the smoothing rule to the interior: a cell
// becomes wall with more than four wall neighbours or with none at all.
func (b *CellularAutomataBuilder) step() {
	m := b.grid
	next := make([]world.Tile, len(m.Tiles))
	copy(next, m.Tiles)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if m.Tiles[m.XYIdx(x+dx, y+dy)] == world.TileWall {
						walls++
					}
				}
			}

			idx := m.XYIdx(x, y)
			if walls > 4 || walls == 0 {
				next[idx] = world.TileWall
			} else {
				next[idx] = world.TileFloor
			}
		}
	}
	m.Tiles = next
}

// startIndex walks left from the map center until it finds floor. If the
// center row has none, the first floor tile of the map is used.
func (b *CellularAutomataBuilder) startIndex() int {
	m := b.grid
	cx, cy := m.Width/2, m.Height/2
	for x := cx; x >= 0; x-- {
		if idx := m.XYIdx(x, cy); m.Tiles[idx] == world.TileFloor {
			return idx
		}
	}
	for idx, tile := range m.Tiles {
		if tile == world.TileFloor {
			return idx
		}
	}
	return m.XYIdx(cx, cy)
}
