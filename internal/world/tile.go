// Package world provides the tile grid, rectangle geometry and the carving
// and connectivity helpers shared by every map builder.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileNone marks a cell that has not been assigned yet.
	TileNone Tile = 0
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t == TileNone {
		return ' '
	}
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileNone:
		return "none"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
