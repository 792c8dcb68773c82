//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas draws frames straight onto an ebiten image.
type ScreenCanvas struct {
	dst *ebiten.Image
}

// NewScreenCanvas wraps dst for one frame.
func NewScreenCanvas(dst *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{dst: dst}
}

// Fill clears the image with c.
func (s *ScreenCanvas) Fill(c color.RGBA) { s.dst.Fill(c) }

// FillRect draws a solid rectangle without antialiasing so cell edges stay crisp.
func (s *ScreenCanvas) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Line strokes a straight line.
func (s *ScreenCanvas) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, false)
}
