package viewer

import (
	"context"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/builder"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Run is the result of one generation.
type Run struct {
	Algorithm algorithm.Algorithm
	Seed      int64
	Final     *world.Grid
	Frames    *Queue
	Rooms     []world.Rect
	Exit      int
	HasExit   bool
}

// Generate builds one map for the session's algorithm. A seed of 0 draws a
// seed from the clock; the seed actually used is not recoverable in that
// case and Run.Seed stays 0.
func Generate(ctx context.Context, s *algorithm.Session, seed int64) *Run {
	b := s.NewBuilder(algorithm.NewRand(seed))
	b.BuildMap(ctx, s.Width, s.Height, s.Options)

	r := &Run{
		Algorithm: s.Algorithm,
		Seed:      seed,
		Final:     b.Map(),
		Frames:    NewQueue(b.SnapshotHistory()),
		Exit:      -1,
	}
	if rl, ok := b.(builder.RoomLister); ok {
		r.Rooms = rl.Rooms()
	}
	if ef, ok := b.(builder.ExitFinder); ok {
		r.Exit, r.HasExit = ef.Exit()
		if !r.HasExit {
			r.Exit = -1
		}
	}
	return r
}
