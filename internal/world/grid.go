package world

import "strings"

// Grid is a rectangular tile map stored as a flat slice.
// Cell (x, y) lives at index y*Width + x.
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewGrid creates a grid with every cell unassigned.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
}

// XYIdx converts a coordinate to a flat index. Coordinates are not checked.
func (g *Grid) XYIdx(x, y int) int {
	return y*g.Width + x
}

// IdxXY converts a flat index back to a coordinate.
func (g *Grid) IdxXY(idx int) (int, int) {
	return idx % g.Width, idx / g.Width
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position, or TileWall when out of bounds.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[g.XYIdx(x, y)]
}

// Set assigns a tile. Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.Tiles[g.XYIdx(x, y)] = t
	}
}

// Fill assigns t to every cell.
func (g *Grid) Fill(t Tile) {
	for i := range g.Tiles {
		g.Tiles[i] = t
	}
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Tiles:  tiles,
	}
}

// String renders the grid as newline separated rows of tile runes.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.Tiles[g.XYIdx(x, y)].Rune())
		}
	}
	return sb.String()
}
