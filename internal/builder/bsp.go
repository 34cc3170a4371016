package builder

import (
	"context"
	"math/rand"
	"sort"

	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	// bspPadding is taken off the map size for the first candidate region.
	bspPadding = 5
	// bspMargin is the wall clearance a BSP room needs on every side.
	bspMargin = 2
	// bspMaxRoomSize caps the side of a BSP room.
	bspMaxRoomSize = 10
	// bspMaxOffset bounds how far a room is pushed into its region.
	bspMaxOffset = 5
)

// BSPBuilder carves small rooms out of a pool of candidate regions produced
// by repeatedly quartering the map, then chains the rooms with corridors.
//
// Options: max rooms. Every attempt counts, placed or not.
type BSPBuilder struct {
	history
	rng   *rand.Rand
	rooms []world.Rect
	rects []world.Rect
}

// NewBSPBuilder creates a builder drawing from rng.
func NewBSPBuilder(rng *rand.Rand) *BSPBuilder {
	return &BSPBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *BSPBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "bsp", width, height)
	b.begin(width, height)
	b.rooms = nil
	b.rects = nil
	b.build(opts[0].Value)
	b.finish()
	endBuild(span, &b.history, len(b.rooms))
}

// Rooms returns the placed rooms, sorted by left edge.
func (b *BSPBuilder) Rooms() []world.Rect {
	return append([]world.Rect(nil), b.rooms...)
}

func (b *BSPBuilder) build(maxRooms int) {
	m := b.grid
	m.Fill(world.TileWall)
	b.TakeSnapshot()

	first := world.NewRect(0, 0, m.Width-bspPadding, m.Height-bspPadding)
	b.rects = append(b.rects, first)
	b.addSubrects(first)

	for attempt := 0; attempt < maxRooms; attempt++ {
		rect := b.randomRect()
		candidate := b.randomSubRect(rect)

		if b.isPossible(candidate) {
			world.StampRoom(m, candidate)
			b.rooms = append(b.rooms, candidate)
			b.addSubrects(rect)
			b.TakeSnapshot()
		}
	}

	if len(b.rooms) == 0 {
		return
	}

	sort.SliceStable(b.rooms, func(i, j int) bool {
		return b.rooms[i].X1 < b.rooms[j].X1
	})

	for i := 0; i < len(b.rooms)-1; i++ {
		room, next := b.rooms[i], b.rooms[i+1]
		startX := randRange(b.rng, room.X1+1, room.X2)
		startY := randRange(b.rng, room.Y1+1, room.Y2)
		endX := randRange(b.rng, next.X1+1, next.X2)
		endY := randRange(b.rng, next.Y1+1, next.Y2)
		world.CarveCorridor(m, startX, startY, endX, endY)
		b.TakeSnapshot()
	}
}

// addSubrects pushes the four quadrants of rect onto the candidate pool.
func (b *BSPBuilder) addSubrects(rect world.Rect) {
	halfWidth := max(abs(rect.Width())/2, 1)
	halfHeight := max(abs(rect.Height())/2, 1)

	b.rects = append(b.rects,
		world.NewRect(rect.X1, rect.Y1, halfWidth, halfHeight),
		world.NewRect(rect.X1, rect.Y1+halfHeight, halfWidth, halfHeight),
		world.NewRect(rect.X1+halfWidth, rect.Y1, halfWidth, halfHeight),
		world.NewRect(rect.X1+halfWidth, rect.Y1+halfHeight, halfWidth, halfHeight),
	)
}

// randomRect picks a candidate region. The most recently added region is
// never picked while the pool holds more than one.
func (b *BSPBuilder) randomRect() world.Rect {
	if len(b.rects) == 1 {
		return b.rects[0]
	}
	return b.rects[b.rng.Intn(len(b.rects)-1)]
}

// randomSubRect returns a room of 4 to 10 tiles per side placed near the
// origin of rect.
func (b *BSPBuilder) randomSubRect(rect world.Rect) world.Rect {
	w := max(3, randRange(b.rng, 1, min(abs(rect.Width()), bspMaxRoomSize))-1) + 1
	h := max(3, randRange(b.rng, 1, min(abs(rect.Height()), bspMaxRoomSize))-1) + 1

	result := rect
	result.X1 += b.rng.Intn(bspMaxOffset)
	result.Y1 += b.rng.Intn(bspMaxOffset)
	result.X2 = result.X1 + w
	result.Y2 = result.Y1 + h
	return result
}

// isPossible reports whether rect, grown by bspMargin on every side, stays
// inside the map border and covers nothing but wall.
func (b *BSPBuilder) isPossible(rect world.Rect) bool {
	m := b.grid
	interior := world.Rect{X1: 1, Y1: 1, X2: m.Width - 2, Y2: m.Height - 2}
	for y := rect.Y1 - bspMargin; y <= rect.Y2+bspMargin; y++ {
		for x := rect.X1 - bspMargin; x <= rect.X2+bspMargin; x++ {
			if !interior.Contains(x, y) {
				return false
			}
			if m.Tiles[m.XYIdx(x, y)] != world.TileWall {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
