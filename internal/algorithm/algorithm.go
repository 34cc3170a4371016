// Package algorithm is the registry of map generation algorithms: their
// names, descriptions, default option schemas, and builder factories.
package algorithm

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/samdwyer/dungeongen/internal/builder"
)

// ErrUnknownAlgorithm is returned by Parse for an unrecognised id.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies a generation algorithm.
type Algorithm int

const (
	// None means no algorithm has been selected.
	None Algorithm = iota - 1
	Random
	Rooms
	BSP
	BSPInterior
	CellularAutomata
	DrunkardsWalk
)

// All returns every selectable algorithm in menu order.
func All() []Algorithm {
	return []Algorithm{
		Random,
		Rooms,
		BSP,
		BSPInterior,
		CellularAutomata,
		DrunkardsWalk,
	}
}

// String returns the display name.
func (a Algorithm) String() string {
	switch a {
	case Random:
		return "Random walls"
	case Rooms:
		return "Rooms and corridors"
	case BSP:
		return "BSP"
	case BSPInterior:
		return "BSP without corridors"
	case CellularAutomata:
		return "Cellular automata"
	case DrunkardsWalk:
		return "Drunkard's walk"
	default:
		return "None"
	}
}

// ID returns the short identifier used on the command line and in config files.
func (a Algorithm) ID() string {
	switch a {
	case Random:
		return "random"
	case Rooms:
		return "rooms"
	case BSP:
		return "bsp"
	case BSPInterior:
		return "bsp-interior"
	case CellularAutomata:
		return "cellular-automata"
	case DrunkardsWalk:
		return "drunkards-walk"
	default:
		return "none"
	}
}

// Description returns a one-line summary of what the algorithm does.
func (a Algorithm) Description() string {
	switch a {
	case Random:
		return "Place walls at the edges and randomly elsewhere"
	case Rooms:
		return "Place random rooms and connect them with corridors"
	case BSP:
		return "Divide the map into rooms with a binary space partitioning algorithm"
	case BSPInterior:
		return "Divide the map into rooms with a binary space partitioning algorithm, filling the whole map"
	case CellularAutomata:
		return "Grow caves from random noise with a cellular automaton"
	case DrunkardsWalk:
		return "Dig caves with randomly staggering diggers"
	default:
		return ""
	}
}

// Options returns a fresh copy of the algorithm's default option schema.
func (a Algorithm) Options() builder.Options {
	return defaults[a].Clone()
}

// New returns a builder for the algorithm drawing from rng.
// Calling New on None panics.
func (a Algorithm) New(rng *rand.Rand) builder.Builder {
	switch a {
	case Random:
		return builder.NewRandomBuilder(rng)
	case Rooms:
		return builder.NewRoomsBuilder(rng)
	case BSP:
		return builder.NewBSPBuilder(rng)
	case BSPInterior:
		return builder.NewBSPInteriorBuilder(rng)
	case CellularAutomata:
		return builder.NewCellularAutomataBuilder(rng)
	case DrunkardsWalk:
		return builder.NewDrunkardsWalkBuilder(rng)
	default:
		panic(fmt.Sprintf("algorithm: no builder for %q", a.ID()))
	}
}

// Parse resolves an algorithm id. Matching ignores case.
func Parse(id string) (Algorithm, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, a := range All() {
		if a.ID() == id {
			return a, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}

// NewRand returns a random source for one generation run. A seed of 0 means
// a seed is derived from the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

var defaults = map[Algorithm]builder.Options{
	Random: {
		{Name: "Ratio", Value: 4, Min: 1, Max: 10},
	},
	Rooms: {
		{Name: "Max rooms", Value: 5, Min: 1, Max: 30},
		{Name: "Min room size", Value: 6, Min: 4, Max: 10},
		{Name: "Max room size", Value: 10, Min: 10, Max: 15},
	},
	BSP: {
		{Name: "Max rooms", Value: 240, Min: 1, Max: 350},
	},
	BSPInterior: {
		{Name: "Min room size", Value: 6, Min: 6, Max: 100},
		{Name: "Vertical split ratio", Value: 5, Min: 1, Max: 10},
	},
	CellularAutomata: {
		{Name: "Floor percent", Value: 55, Min: 1, Max: 100},
		{Name: "Iterations", Value: 15, Min: 1, Max: 50},
	},
	DrunkardsWalk: {
		{Name: "Spawn mode", Value: int(builder.SpawnStartingPoint), Min: int(builder.SpawnStartingPoint), Max: int(builder.SpawnRandom)},
		{Name: "Drunken lifetime", Value: 400, Min: 10, Max: 1000},
		{Name: "Floor percent", Value: 50, Min: 10, Max: 80},
	},
}
