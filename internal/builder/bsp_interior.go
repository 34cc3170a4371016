package builder

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/world"
)

// BSPInteriorBuilder partitions the whole interior into rooms by binary
// space partitioning and links consecutive rooms with corridors.
//
// Options: min room size, vertical split ratio (1-10, in tenths). The ratio
// is the chance that a region is cut by a vertical line.
type BSPInteriorBuilder struct {
	history
	rng   *rand.Rand
	rooms []world.Rect
}

// NewBSPInteriorBuilder creates a builder drawing from rng.
func NewBSPInteriorBuilder(rng *rand.Rand) *BSPInteriorBuilder {
	return &BSPInteriorBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *BSPInteriorBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "bsp_interior", width, height)
	b.begin(width, height)
	b.rooms = nil
	b.build(opts[0].Value, float64(opts[1].Value)/10)
	b.finish()
	endBuild(span, &b.history, len(b.rooms))
}

// Rooms returns the partition leaves in partition order. Leaves are
// half-open: a room covers X1 <= x < X2 and Y1 <= y < Y2, so together they
// tile the map interior exactly.
func (b *BSPInteriorBuilder) Rooms() []world.Rect {
	return append([]world.Rect(nil), b.rooms...)
}

func (b *BSPInteriorBuilder) build(minRoomSize int, splitChance float64) {
	m := b.grid
	m.Fill(world.TileWall)
	b.TakeSnapshot()

	b.rooms = b.partition(world.NewRect(1, 1, m.Width-2, m.Height-2), minRoomSize, splitChance)

	for _, room := range b.rooms {
		floor := b.floorArea(room)
		for y := floor.Y1; y < floor.Y2; y++ {
			for x := floor.X1; x < floor.X2; x++ {
				m.Tiles[m.XYIdx(x, y)] = world.TileFloor
			}
		}
		b.TakeSnapshot()
	}

	for i := 0; i < len(b.rooms)-1; i++ {
		from, to := b.floorArea(b.rooms[i]), b.floorArea(b.rooms[i+1])
		startX := randRange(b.rng, from.X1, from.X2)
		startY := randRange(b.rng, from.Y1, from.Y2)
		endX := randRange(b.rng, to.X1, to.X2)
		endY := randRange(b.rng, to.Y1, to.Y2)
		world.CarveCorridor(m, startX, startY, endX, endY)
		b.TakeSnapshot()
	}
}

// partition splits root depth-first with an explicit stack and returns the
// leaves, first half before second half. Every rect taken off the stack is
// cut in two; a half goes back on the stack only while its extent along the
// cut axis exceeds minRoomSize, otherwise it is a leaf.
func (b *BSPInteriorBuilder) partition(root world.Rect, minRoomSize int, splitChance float64) []world.Rect {
	type item struct {
		rect  world.Rect
		split bool
	}

	var leaves []world.Rect
	stack := []item{{rect: root, split: true}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !it.split {
			leaves = append(leaves, it.rect)
			continue
		}
		first, second, cutX, ok := b.split(it.rect, splitChance)
		if !ok {
			leaves = append(leaves, it.rect)
			continue
		}
		stack = append(stack,
			item{rect: second, split: extent(second, cutX) > minRoomSize},
			item{rect: first, split: extent(first, cutX) > minRoomSize},
		)
	}
	return leaves
}

// split cuts rect in half. The axis is a weighted coin flip: cutX is true,
// with probability splitChance, for a vertical cut across x. ok is false when
// rect is too thin along the chosen axis to yield two non-empty halves.
func (b *BSPInteriorBuilder) split(rect world.Rect, splitChance float64) (first, second world.Rect, cutX, ok bool) {
	cutX = b.rng.Float64() < splitChance
	half := extent(rect, cutX) / 2
	if half < 1 {
		return rect, rect, cutX, false
	}
	if cutX {
		return world.NewRect(rect.X1, rect.Y1, half, rect.Height()),
			world.NewRect(rect.X1+half, rect.Y1, rect.Width()-half, rect.Height()),
			cutX, true
	}
	return world.NewRect(rect.X1, rect.Y1, rect.Width(), half),
		world.NewRect(rect.X1, rect.Y1+half, rect.Width(), rect.Height()-half),
		cutX, true
}

// extent is the size of rect along the x axis when alongX is set, else y.
func extent(rect world.Rect, alongX bool) int {
	if alongX {
		return rect.Width()
	}
	return rect.Height()
}

// floorArea returns the half-open part of room that is carved. The last
// column and row are kept as a dividing wall unless they touch the map
// border, which is already wall.
func (b *BSPInteriorBuilder) floorArea(room world.Rect) world.Rect {
	floor := room
	if room.X2 < b.grid.Width-1 && room.Width() > 1 {
		floor.X2--
	}
	if room.Y2 < b.grid.Height-1 && room.Height() > 1 {
		floor.Y2--
	}
	return floor
}
