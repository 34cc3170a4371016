package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/dungeongen/internal/world"
)

// RenderText converts a grid to a styled string, one line per row. exit is
// drawn with ExitRune when exit >= 0. Adjacent tiles of the same kind share
// one style run to keep escape sequences short.
func RenderText(g *world.Grid, exit int, theme Theme) string {
	styles := map[world.Tile]lipgloss.Style{
		world.TileNone:  lipgloss.NewStyle(),
		world.TileWall:  textStyle(theme.Wall),
		world.TileFloor: textStyle(theme.Floor),
	}
	exitStyle := textStyle(theme.Exit).Bold(true)

	var sb strings.Builder
	sb.Grow(g.Width*g.Height*2 + g.Height)

	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.Width {
			idx := g.XYIdx(x, y)
			if idx == exit {
				sb.WriteString(exitStyle.Render(string(ExitRune)))
				x++
				continue
			}

			start := g.Tiles[idx]
			var run strings.Builder
			for x < g.Width {
				idx = g.XYIdx(x, y)
				if g.Tiles[idx] != start || idx == exit {
					break
				}
				run.WriteRune(start.Rune())
				x++
			}
			sb.WriteString(styles[start].Render(run.String()))
		}
	}
	return sb.String()
}
