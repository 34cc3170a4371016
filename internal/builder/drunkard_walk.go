package builder

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/world"
)

// SpawnMode selects where drunkard's walk diggers start.
type SpawnMode int

const (
	// SpawnStartingPoint starts every digger at the map center.
	SpawnStartingPoint SpawnMode = iota
	// SpawnRandom starts the first digger at the center and the rest at
	// random interior points.
	SpawnRandom
)

// String returns a human-readable spawn mode name.
func (m SpawnMode) String() string {
	switch m {
	case SpawnStartingPoint:
		return "starting_point"
	case SpawnRandom:
		return "random"
	default:
		return "unknown"
	}
}

const (
	// drunkardMargin keeps diggers this many cells away from every edge.
	drunkardMargin = 2
	// MaxDiggers bounds a drunkard's walk run whose floor target cannot be
	// reached with the given options.
	MaxDiggers = 10000
)

// DrunkardsWalkBuilder digs caves with random walkers until enough of the
// map is floor.
//
// Options: spawn mode (0 starting point, 1 random), drunken lifetime (steps
// per digger), floor percent (target share of floor tiles).
type DrunkardsWalkBuilder struct {
	history
	rng     *rand.Rand
	trail   []bool
	touched []int
	diggers int
	active  int
	exit    int
	hasExit bool
}

// NewDrunkardsWalkBuilder creates a builder drawing from rng.
func NewDrunkardsWalkBuilder(rng *rand.Rand) *DrunkardsWalkBuilder {
	return &DrunkardsWalkBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *DrunkardsWalkBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "drunkards_walk", width, height)
	b.begin(width, height)
	b.diggers, b.active = 0, 0
	b.build(SpawnMode(opts[0].Value), opts[1].Value, opts[2].Value)
	b.finish()
	span.SetAttributes(diggerAttributes(b.diggers, b.active)...)
	endBuild(span, &b.history, 0)
}

// Exit implements ExitFinder.
func (b *DrunkardsWalkBuilder) Exit() (int, bool) {
	return b.exit, b.hasExit
}

// Diggers returns how many diggers the last run spawned.
func (b *DrunkardsWalkBuilder) Diggers() int {
	return b.diggers
}

// ActiveDiggers returns how many diggers of the last run dug new floor.
func (b *DrunkardsWalkBuilder) ActiveDiggers() int {
	return b.active
}

func (b *DrunkardsWalkBuilder) build(mode SpawnMode, lifetime, floorPercent int) {
	m := b.grid
	m.Fill(world.TileWall)
	b.TakeSnapshot()

	b.trail = make([]bool, len(m.Tiles))
	b.touched = b.touched[:0]

	startX := clamp(m.Width/2, drunkardMargin, m.Width-1-drunkardMargin)
	startY := clamp(m.Height/2, drunkardMargin, m.Height-1-drunkardMargin)

	// Diggers cannot leave the margin, so no target beyond that area is met.
	desired := len(m.Tiles) * floorPercent / 100
	reachable := max(m.Width-2*drunkardMargin, 0) * max(m.Height-2*drunkardMargin, 0)
	desired = min(desired, reachable)

	floor := m.Count(world.TileFloor)
	for floor < desired && b.diggers < MaxDiggers {
		x, y := startX, startY
		if mode == SpawnRandom && b.diggers > 0 {
			x = randRange(b.rng, drunkardMargin, m.Width-drunkardMargin)
			y = randRange(b.rng, drunkardMargin, m.Height-drunkardMargin)
		}

		dug := b.stagger(x, y, lifetime)
		floor += b.reconcile()
		if dug {
			b.TakeSnapshot()
			b.active++
		}
		b.diggers++
	}

	start := m.XYIdx(startX, startY)
	b.exit, b.hasExit = world.PruneUnreachable(m, start, world.DefaultPruneDepth)
	b.TakeSnapshot()
}

// stagger walks one digger for lifetime steps from (x, y), marking its trail.
// It reports whether the digger passed over any wall.
func (b *DrunkardsWalkBuilder) stagger(x, y, lifetime int) bool {
	m := b.grid
	dug := false
	for life := lifetime; life > 0; life-- {
		idx := m.XYIdx(x, y)
		if m.Tiles[idx] == world.TileWall {
			dug = true
		}
		if !b.trail[idx] {
			b.trail[idx] = true
			b.touched = append(b.touched, idx)
		}

		switch b.rng.Intn(4) {
		case 0:
			if x > drunkardMargin {
				x--
			}
		case 1:
			if x < m.Width-1-drunkardMargin {
				x++
			}
		case 2:
			if y > drunkardMargin {
				y--
			}
		default:
			if y < m.Height-1-drunkardMargin {
				y++
			}
		}
	}
	return dug
}

// reconcile turns the digger's trail into floor and clears it. It returns
// the number of new floor tiles.
func (b *DrunkardsWalkBuilder) reconcile() int {
	m := b.grid
	added := 0
	for _, idx := range b.touched {
		if m.Tiles[idx] != world.TileFloor {
			m.Tiles[idx] = world.TileFloor
			added++
		}
		b.trail[idx] = false
	}
	b.touched = b.touched[:0]
	return added
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
