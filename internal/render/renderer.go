// Package render draws the visible part of the infinite grid onto a canvas.
package render

import (
	"image/color"

	"lifegrid/internal/chunk"
	"lifegrid/internal/core"
	"lifegrid/internal/viewport"
)

const (
	// GridMinZoom is the zoom at or below which grid lines are skipped; they
	// would alias into noise.
	GridMinZoom = 0.2
	// GapMinZoom is the zoom above which cells are inset by CellGap pixels.
	GapMinZoom = 3.0
	// CellGap is the inset applied on each side of a cell at high zoom.
	CellGap = 1.0
	// GridLineWidth is the stroke width of grid lines in pixels.
	GridLineWidth = 0.5
)

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	Fill(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
}

// Stats summarises what a frame drew.
type Stats struct {
	Chunks    int
	Cells     int
	GridLines int
}

// Renderer draws frames. It keeps only presentation settings; every frame
// reads the viewport and store afresh and mutates neither.
type Renderer struct {
	Theme    Theme
	ShowGrid bool
}

// New returns a renderer using the default theme with grid lines enabled.
func New() *Renderer {
	return &Renderer{Theme: DefaultTheme(), ShowGrid: true}
}

// VisibleChunks converts a cell rectangle into the chunk keys it touches.
func VisibleChunks(cells core.Rect) core.Rect {
	return core.Rect{
		MinRow: core.FloorDiv(cells.MinRow, chunk.Size),
		MinCol: core.FloorDiv(cells.MinCol, chunk.Size),
		MaxRow: core.FloorDiv(cells.MaxRow, chunk.Size),
		MaxCol: core.FloorDiv(cells.MaxCol, chunk.Size),
	}
}

// Draw renders the part of store visible through view on a width x height
// canvas.
func (r *Renderer) Draw(dst Canvas, view *viewport.Viewport, store *chunk.Store, width, height float64) Stats {
	var st Stats
	dst.Fill(r.Theme.Background)

	cells := view.VisibleCells(width, height)
	size := view.CellSize()

	if r.ShowGrid && view.Zoom > GridMinZoom {
		for c := cells.MinCol; c <= cells.MaxCol; c++ {
			x := float64(c)*size + view.OffsetX
			dst.Line(x, 0, x, height, GridLineWidth, r.Theme.Grid)
			st.GridLines++
		}
		for row := cells.MinRow; row <= cells.MaxRow; row++ {
			y := float64(row)*size + view.OffsetY
			dst.Line(0, y, width, y, GridLineWidth, r.Theme.Grid)
			st.GridLines++
		}
	}

	gap := 0.0
	if view.Zoom > GapMinZoom {
		gap = CellGap
	}
	drawChunk := func(k chunk.Key, c *chunk.Chunk) {
		st.Chunks++
		chunk.EachLive(k, c, func(p core.Point) {
			if !cells.Contains(p) {
				return
			}
			x, y, s := view.WorldToScreen(p.Row, p.Col)
			dst.FillRect(x+gap, y+gap, s-2*gap, s-2*gap, r.Theme.Cell)
			st.Cells++
		})
	}

	// Zoomed far out the visible range can hold more chunk slots than the
	// store has chunks; walk whichever set is smaller.
	chunks := VisibleChunks(cells)
	if chunks.Rows()*chunks.Cols() > store.Len() {
		for _, k := range store.Keys() {
			if !chunks.Contains(core.Point{Row: k.Row, Col: k.Col}) {
				continue
			}
			c, _ := store.Chunk(k)
			drawChunk(k, c)
		}
		return st
	}
	for cr := chunks.MinRow; cr <= chunks.MaxRow; cr++ {
		for cc := chunks.MinCol; cc <= chunks.MaxCol; cc++ {
			k := chunk.Key{Row: cr, Col: cc}
			if c, ok := store.Chunk(k); ok {
				drawChunk(k, c)
			}
		}
	}
	return st
}
