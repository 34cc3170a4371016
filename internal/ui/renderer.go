package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/world"
)

// ExitRune marks the exit tile found by pruning.
const ExitRune = '>'

// Frame is everything drawn in one refresh.
type Frame struct {
	Grid    *world.Grid
	Exit    int  // Index of the exit tile
	HasExit bool // Exit is only drawn when set
	Status  []string
}

// Renderer handles drawing maps to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the grid with the status lines below it.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	if f.Grid != nil {
		for y := 0; y < f.Grid.Height; y++ {
			for x := 0; x < f.Grid.Width; x++ {
				tile := f.Grid.At(x, y)
				r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
			}
		}
		if f.HasExit {
			x, y := f.Grid.IdxXY(f.Exit)
			r.screen.SetContent(x, y, ExitRune, cellStyle(r.theme.Exit).Bold(true))
		}
	}

	top := 0
	if f.Grid != nil {
		top = f.Grid.Height + 1
	}
	for i, line := range f.Status {
		r.RenderMessage(line, top+i)
	}

	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return cellStyle(r.theme.Wall)
	case world.TileFloor:
		return cellStyle(r.theme.Floor)
	default:
		return tcell.StyleDefault
	}
}
