//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Editor is the part of the engine the overlay previews.
type Editor interface {
	Viewport() *viewport.Viewport
	Preview() []core.Point
}

// Overlay draws a translucent ghost of the cells the next click would touch.
type Overlay struct {
	editor Editor
	show   bool

	paint color.RGBA
	edge  color.RGBA
}

// NewOverlay constructs an overlay previewing editor's active tool.
func NewOverlay(editor Editor) *Overlay {
	return &Overlay{
		editor: editor,
		show:   true,
		paint:  color.RGBA{R: 16, G: 185, B: 129, A: 90},
		edge:   color.RGBA{R: 220, G: 220, B: 230, A: 160},
	}
}

// Update toggles the preview with the O key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.show = !o.show
	}
}

// Draw paints the preview around the cell under the cursor at (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy int) {
	if !o.show {
		return
	}
	offsets := o.editor.Preview()
	if len(offsets) == 0 {
		return
	}
	view := o.editor.Viewport()
	row, col := view.ScreenToWorld(float64(cx), float64(cy))
	for _, d := range offsets {
		x, y, size := view.WorldToScreen(row+d.Row, col+d.Col)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), o.paint, false)
	}
	// Outline the anchor cell so single-cell brushes stay visible at low zoom.
	x, y, size := view.WorldToScreen(row, col)
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, o.edge, false)
}
