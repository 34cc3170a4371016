// Package builder implements the map generation algorithms. Every algorithm
// satisfies Builder: it is handed a size and an ordered option list, fills a
// world.Grid, and records a copy of the grid after each step so the run can
// be replayed.
//
// A builder performs exactly one run. Create a fresh instance per map.
package builder

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Builder is the contract shared by every generation algorithm.
type Builder interface {
	// BuildMap generates a width x height map. Options are read by position
	// and must match the algorithm's schema; a short list panics.
	BuildMap(ctx context.Context, width, height int, opts []Option)

	// Map returns a copy of the current grid. Before BuildMap it is empty.
	Map() *world.Grid

	// TakeSnapshot appends a copy of the current grid to the history.
	TakeSnapshot()

	// SnapshotHistory returns copies of every snapshot in the order they were
	// taken. Before BuildMap it is empty.
	SnapshotHistory() []*world.Grid

	// State reports where the builder is in its lifecycle.
	State() State
}

// RoomLister is implemented by builders that place rectangular rooms.
type RoomLister interface {
	Rooms() []world.Rect
}

// ExitFinder is implemented by builders that prune unreachable areas. The
// exit is the reachable tile furthest from the start point.
type ExitFinder interface {
	Exit() (idx int, ok bool)
}

// State is the lifecycle of a builder.
type State int

const (
	// StateUnbuilt is the state of a fresh builder.
	StateUnbuilt State = iota
	// StateBuilding is held while BuildMap runs.
	StateBuilding
	// StateBuilt is reached when BuildMap returns.
	StateBuilt
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilding:
		return "building"
	case StateBuilt:
		return "built"
	default:
		return "unknown"
	}
}

// history holds the live grid and its snapshots. Each algorithm embeds it.
type history struct {
	grid      *world.Grid
	snapshots []*world.Grid
	state     State
}

// begin allocates the grid for a new run.
func (h *history) begin(width, height int) {
	h.grid = world.NewGrid(width, height)
	h.snapshots = nil
	h.state = StateBuilding
}

func (h *history) finish() {
	h.state = StateBuilt
}

// TakeSnapshot appends a copy of the live grid to the history.
func (h *history) TakeSnapshot() {
	if h.grid == nil {
		return
	}
	h.snapshots = append(h.snapshots, h.grid.Clone())
}

// Map returns a copy of the live grid.
func (h *history) Map() *world.Grid {
	if h.grid == nil {
		return &world.Grid{}
	}
	return h.grid.Clone()
}

// SnapshotHistory returns copies of the recorded snapshots, oldest first.
func (h *history) SnapshotHistory() []*world.Grid {
	if len(h.snapshots) == 0 {
		return nil
	}
	out := make([]*world.Grid, len(h.snapshots))
	for i, s := range h.snapshots {
		out[i] = s.Clone()
	}
	return out
}

// State reports the lifecycle state.
func (h *history) State() State {
	return h.state
}

// randRange returns a value in [lo, hi). When the range is empty it returns lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
