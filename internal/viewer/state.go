// Package viewer replays the snapshot history of a generation run on the
// terminal, one frame per tick.
package viewer

// State represents the current viewer state.
type State int

const (
	// StateMenu lists the algorithms and waits for a choice.
	StateMenu State = iota
	// StateRunning pops one snapshot per tick.
	StateRunning
	// StateFinished holds the final map until the user regenerates or quits.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
