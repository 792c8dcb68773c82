package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Default theme colours.
const (
	DefaultBackground = "#0d0f14"
	DefaultGrid       = "#1e293b"
	DefaultCell       = "#10b981"
)

// Theme holds the three colours a frame is drawn with.
type Theme struct {
	Background color.RGBA
	Grid       color.RGBA
	Cell       color.RGBA
}

// DefaultTheme returns the dark theme with green cells.
func DefaultTheme() Theme {
	t, _ := ParseTheme(DefaultBackground, DefaultGrid, DefaultCell)
	return t
}

// ParseTheme builds a theme from hex colour strings.
func ParseTheme(bg, grid, cell string) (Theme, error) {
	var t Theme
	var err error
	if t.Background, err = ParseHex(bg); err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}
	if t.Grid, err = ParseHex(grid); err != nil {
		return Theme{}, fmt.Errorf("grid: %w", err)
	}
	if t.Cell, err = ParseHex(cell); err != nil {
		return Theme{}, fmt.Errorf("cell: %w", err)
	}
	return t, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
