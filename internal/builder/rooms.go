package builder

import (
	"context"
	"math/rand"
	"sort"

	"github.com/samdwyer/dungeongen/internal/world"
)

// RoomsBuilder places random non-overlapping rooms and joins them with
// straight tunnels.
//
// Options: max rooms, min room size, max room size. Every one of the max
// rooms attempts counts, whether or not the room fits.
type RoomsBuilder struct {
	history
	rng   *rand.Rand
	rooms []world.Rect
}

// NewRoomsBuilder creates a builder drawing from rng.
func NewRoomsBuilder(rng *rand.Rand) *RoomsBuilder {
	return &RoomsBuilder{rng: rng}
}

// BuildMap implements Builder.
func (b *RoomsBuilder) BuildMap(ctx context.Context, width, height int, opts []Option) {
	span := startBuild(ctx, "rooms", width, height)
	b.begin(width, height)
	b.rooms = nil
	b.build(opts[0].Value, opts[1].Value, opts[2].Value)
	b.finish()
	endBuild(span, &b.history, len(b.rooms))
}

// Rooms returns the accepted rooms, sorted by left edge.
func (b *RoomsBuilder) Rooms() []world.Rect {
	return append([]world.Rect(nil), b.rooms...)
}

func (b *RoomsBuilder) build(maxRooms, minSize, maxSize int) {
	m := b.grid
	m.Fill(world.TileWall)
	b.TakeSnapshot()

	for i := 0; i < maxRooms; i++ {
		w := randRange(b.rng, minSize, maxSize)
		h := randRange(b.rng, minSize, maxSize)

		// The room must leave the outer border intact.
		if m.Width-w-1 <= 1 || m.Height-h-1 <= 1 {
			continue
		}
		x := randRange(b.rng, 1, m.Width-w-1) - 1
		y := randRange(b.rng, 1, m.Height-h-1) - 1

		candidate := world.NewRect(x, y, w, h)
		if b.overlaps(candidate) {
			continue
		}

		world.StampRoom(m, candidate)
		b.TakeSnapshot()
		b.rooms = append(b.rooms, candidate)
	}

	if len(b.rooms) == 0 {
		return
	}

	sort.SliceStable(b.rooms, func(i, j int) bool {
		return b.rooms[i].X1 < b.rooms[j].X1
	})

	// Every room is joined to the last room in the sorted list.
	lastX, lastY := b.rooms[len(b.rooms)-1].Center()
	for _, room := range b.rooms {
		newX, newY := room.Center()
		if b.rng.Intn(2) == 0 {
			world.CarveHorizontalTunnel(m, lastX, newX, lastY)
			b.TakeSnapshot()
			world.CarveVerticalTunnel(m, lastY, newY, newX)
		} else {
			world.CarveVerticalTunnel(m, lastY, newY, lastX)
			b.TakeSnapshot()
			world.CarveHorizontalTunnel(m, lastX, newX, newY)
		}
		b.TakeSnapshot()
	}
}

// overlaps reports whether candidate intersects any accepted room.
func (b *RoomsBuilder) overlaps(candidate world.Rect) bool {
	for _, other := range b.rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}
