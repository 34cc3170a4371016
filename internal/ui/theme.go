package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Theme holds the hex colours used to draw each tile kind.
type Theme struct {
	Wall  string
	Floor string
	Exit  string
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Wall:  "#C0C0C0",
		Floor: "#4E4E4E",
		Exit:  "#FFD700",
	}
}

// ParseTheme applies overrides keyed by "wall", "floor" and "exit" to the
// default palette. Every colour is validated.
func ParseTheme(overrides map[string]string) (Theme, error) {
	t := DefaultTheme()
	for key, hex := range overrides {
		switch strings.ToLower(key) {
		case "wall":
			t.Wall = hex
		case "floor":
			t.Floor = hex
		case "exit":
			t.Exit = hex
		default:
			return t, fmt.Errorf("unknown theme key %q", key)
		}
	}
	for _, hex := range []string{t.Wall, t.Floor, t.Exit} {
		if _, err := parseHexColor(hex); err != nil {
			return t, err
		}
	}
	return t, nil
}

// parseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func parseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(v)), nil
}

// cellColor is parseHexColor for colours already checked by ParseTheme.
func cellColor(hex string) tcell.Color {
	c, err := parseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

func cellStyle(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(cellColor(hex))
}

func textStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#" + strings.TrimPrefix(hex, "#")))
}
