// Package viewport maps between world cell coordinates and screen pixels
// under a pan offset and zoom factor.
package viewport

import (
	"math"

	"lifegrid/internal/core"
)

const (
	DefaultBaseCellSize = 20.0
	DefaultMinZoom      = 0.1
	DefaultMaxZoom      = 5.0

	// wheelSpeed scales wheel deltas relative to the current zoom so each
	// notch feels the same at every magnification.
	wheelSpeed = 0.001
)

// Viewport places the world origin at (OffsetX, OffsetY) screen pixels and
// draws each cell BaseCellSize*Zoom pixels wide.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64

	BaseCellSize float64
	MinZoom      float64
	MaxZoom      float64
}

// New returns a viewport at zoom 1 with the origin in the top-left corner.
// Non-positive arguments fall back to the defaults.
func New(baseCellSize, minZoom, maxZoom float64) *Viewport {
	if baseCellSize <= 0 {
		baseCellSize = DefaultBaseCellSize
	}
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom < minZoom {
		maxZoom = max(DefaultMaxZoom, minZoom)
	}
	v := &Viewport{BaseCellSize: baseCellSize, MinZoom: minZoom, MaxZoom: maxZoom}
	v.Zoom = v.clamp(1)
	return v
}

// CellSize is the on-screen edge length of one cell in pixels.
func (v *Viewport) CellSize() float64 { return v.BaseCellSize * v.Zoom }

// WorldToScreen returns the top-left pixel of a cell and its pixel size.
func (v *Viewport) WorldToScreen(row, col int) (x, y, size float64) {
	size = v.CellSize()
	x = float64(col)*size + v.OffsetX
	y = float64(row)*size + v.OffsetY
	return x, y, size
}

// ScreenToWorld returns the cell containing the screen pixel.
func (v *Viewport) ScreenToWorld(x, y float64) (row, col int) {
	wx, wy := v.screenToWorldF(x, y)
	return int(math.Floor(wy)), int(math.Floor(wx))
}

// screenToWorldF returns continuous world coordinates (column, row).
func (v *Viewport) screenToWorldF(x, y float64) (float64, float64) {
	size := v.CellSize()
	return (x - v.OffsetX) / size, (y - v.OffsetY) / size
}

// Pan translates the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// SetZoom changes the zoom without anchoring, clamped to the zoom limits.
func (v *Viewport) SetZoom(zoom float64) {
	v.Zoom = v.clamp(zoom)
}

// ZoomAt changes the zoom while keeping the world point under (px, py) fixed.
func (v *Viewport) ZoomAt(px, py, zoom float64) {
	wx, wy := v.screenToWorldF(px, py)
	v.Zoom = v.clamp(zoom)
	size := v.CellSize()
	v.OffsetX = px - wx*size
	v.OffsetY = py - wy*size
}

// Wheel applies a scroll delta at (px, py). Positive deltaY zooms out.
func (v *Viewport) Wheel(deltaY, px, py float64) {
	v.ZoomAt(px, py, v.Zoom-deltaY*wheelSpeed*v.Zoom)
}

// CenterOn pans so the given cell sits in the middle of a width x height
// screen.
func (v *Viewport) CenterOn(row, col int, width, height float64) {
	size := v.CellSize()
	v.OffsetX = width/2 - (float64(col)+0.5)*size
	v.OffsetY = height/2 - (float64(row)+0.5)*size
}

// VisibleCells returns the cells covering a width x height screen, padded by
// one cell on every side.
func (v *Viewport) VisibleCells(width, height float64) core.Rect {
	minRow, minCol := v.ScreenToWorld(0, 0)
	maxRow, maxCol := v.ScreenToWorld(width, height)
	return core.Rect{
		MinRow: minRow - 1,
		MinCol: minCol - 1,
		MaxRow: maxRow + 1,
		MaxCol: maxCol + 1,
	}
}

func (v *Viewport) clamp(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return v.Zoom
	}
	return max(v.MinZoom, min(v.MaxZoom, zoom))
}
