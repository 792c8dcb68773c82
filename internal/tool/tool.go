// Package tool turns pointer input into viewport pans and cell edits.
package tool

import (
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/viewport"
)

// Kind selects what a primary-button drag does.
type Kind string

const (
	Move   Kind = "move"
	Brush  Kind = "brush"
	Eraser Kind = "eraser"
)

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Move, Brush, Eraser:
		return Kind(s), true
	}
	return "", false
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Config is the brush configuration chosen by the user.
type Config struct {
	Tool      Kind
	BrushSize int
	Shape     Shape
	Pattern   string
	// Rotation is the number of clockwise quarter turns applied to stamped
	// patterns.
	Rotation int
}

// DefaultConfig returns the move tool with a single-cell round brush.
func DefaultConfig() Config {
	return Config{Tool: Move, BrushSize: 1, Shape: Circle, Pattern: pattern.None}
}

// Controller is the pointer state machine. It is driven by one goroutine.
type Controller struct {
	cfg  Config
	view *viewport.Viewport

	pressed      bool
	panning      bool
	lastX, lastY float64
}

// NewController returns a controller editing through view.
func NewController(view *viewport.Viewport, cfg Config) *Controller {
	c := &Controller{view: view, cfg: DefaultConfig()}
	if k, ok := ParseKind(string(cfg.Tool)); ok {
		c.cfg.Tool = k
	}
	if s, ok := ParseShape(string(cfg.Shape)); ok {
		c.cfg.Shape = s
	}
	c.SetBrushSize(cfg.BrushSize)
	if cfg.Pattern != "" {
		c.cfg.Pattern = cfg.Pattern
	}
	c.cfg.Rotation = core.Mod(cfg.Rotation, 4)
	return c
}

// Config returns the current brush configuration.
func (c *Controller) Config() Config { return c.cfg }

// SetTool switches the active tool and cancels any drag in progress.
func (c *Controller) SetTool(k Kind) {
	if _, ok := ParseKind(string(k)); !ok {
		return
	}
	c.cfg.Tool = k
	c.PointerUp()
}

// SetBrushSize sets the brush radius; values below 1 become 1.
func (c *Controller) SetBrushSize(n int) {
	if n < 1 {
		n = 1
	}
	c.cfg.BrushSize = n
}

// SetShape sets the brush outline. Unknown shapes are ignored.
func (c *Controller) SetShape(s Shape) {
	if _, ok := ParseShape(string(s)); ok {
		c.cfg.Shape = s
	}
}

// SetPattern selects the stamp pattern. Choosing a pattern other than
// pattern.None also selects the brush. Keys are not validated here; stamping
// an unknown key places nothing.
func (c *Controller) SetPattern(key string) {
	if key == "" {
		key = pattern.None
	}
	c.cfg.Pattern = key
	c.cfg.Rotation = 0
	if key != pattern.None {
		c.SetTool(Brush)
	}
}

// Rotate turns stamped patterns by another clockwise quarter turn.
func (c *Controller) Rotate() {
	c.cfg.Rotation = (c.cfg.Rotation + 1) % 4
}

// Dragging reports whether a press is still being tracked.
func (c *Controller) Dragging() bool { return c.pressed }

// Stencil returns the pattern the brush would stamp, already rotated.
func (c *Controller) Stencil() (pattern.Pattern, bool) {
	if c.cfg.Tool != Brush || c.cfg.Pattern == pattern.None {
		return pattern.Pattern{}, false
	}
	p, ok := pattern.Lookup(c.cfg.Pattern)
	if !ok {
		return pattern.Pattern{}, false
	}
	return p.Rotate(c.cfg.Rotation), true
}

// Preview returns the offsets, relative to the cell under the pointer, that a
// left press would touch. The move tool touches nothing.
func (c *Controller) Preview() []core.Point {
	switch c.cfg.Tool {
	case Brush:
		if c.cfg.Pattern != pattern.None {
			p, ok := c.Stencil()
			if !ok {
				return nil
			}
			return p.Cells()
		}
		return Footprint(c.cfg.BrushSize, c.cfg.Shape)
	case Eraser:
		return Footprint(c.cfg.BrushSize, c.cfg.Shape)
	}
	return nil
}

// PointerDown starts a press at screen (x, y). It reports whether anything
// changed that needs a redraw.
func (c *Controller) PointerDown(w CellWriter, x, y float64, b Button) bool {
	c.pressed = true
	c.lastX, c.lastY = x, y

	if c.cfg.Tool == Move || b == ButtonMiddle {
		c.panning = true
		return false
	}
	if b != ButtonLeft {
		c.pressed = false
		return false
	}

	row, col := c.view.ScreenToWorld(x, y)
	at := core.Point{Row: row, Col: col}
	switch c.cfg.Tool {
	case Brush:
		if c.cfg.Pattern != pattern.None {
			// A stamp is placed once per press, never along the drag.
			c.pressed = false
			p, ok := c.Stencil()
			if !ok {
				return false
			}
			p.Stamp(w, at.Row, at.Col)
			return true
		}
		Paint(w, at, c.cfg.BrushSize, c.cfg.Shape, 1)
	case Eraser:
		Paint(w, at, c.cfg.BrushSize, c.cfg.Shape, 0)
	}
	return true
}

// PointerMove continues a press. Without a press it does nothing.
func (c *Controller) PointerMove(w CellWriter, x, y float64) bool {
	if !c.pressed {
		return false
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	if c.panning {
		c.view.Pan(dx, dy)
		return true
	}
	row, col := c.view.ScreenToWorld(x, y)
	at := core.Point{Row: row, Col: col}
	switch c.cfg.Tool {
	case Brush:
		Paint(w, at, c.cfg.BrushSize, c.cfg.Shape, 1)
	case Eraser:
		Paint(w, at, c.cfg.BrushSize, c.cfg.Shape, 0)
	default:
		return false
	}
	return true
}

// PointerUp ends the current press.
func (c *Controller) PointerUp() {
	c.pressed = false
	c.panning = false
}

// Wheel zooms the viewport around the pointer.
func (c *Controller) Wheel(deltaY, x, y float64) bool {
	before := c.view.Zoom
	c.view.Wheel(deltaY, x, y)
	return c.view.Zoom != before
}
