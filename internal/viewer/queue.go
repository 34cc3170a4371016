package viewer

import "github.com/samdwyer/dungeongen/internal/world"

// Queue hands out snapshots oldest first.
type Queue struct {
	frames []*world.Grid
	total  int
}

// NewQueue wraps a snapshot history. The slice is owned by the queue.
func NewQueue(frames []*world.Grid) *Queue {
	return &Queue{frames: frames, total: len(frames)}
}

// Pop removes and returns the oldest snapshot. ok is false once the queue is
// exhausted.
func (q *Queue) Pop() (g *world.Grid, ok bool) {
	if len(q.frames) == 0 {
		return nil, false
	}
	g = q.frames[0]
	q.frames[0] = nil
	q.frames = q.frames[1:]
	return g, true
}

// Len is the number of snapshots left.
func (q *Queue) Len() int { return len(q.frames) }

// Empty reports whether every snapshot has been popped.
func (q *Queue) Empty() bool { return len(q.frames) == 0 }

// Shown is how many snapshots have been popped so far.
func (q *Queue) Shown() int { return q.total - len(q.frames) }

// Total is the length of the history the queue was built from.
func (q *Queue) Total() int { return q.total }
