// Package term runs an engine inside a terminal. Every terminal cell shows
// two vertically stacked pixels using the upper half block glyph, and one
// pixel is one world cell at zoom 1.
package term

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/engine"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/tool"
)

const (
	// CellSize is the base cell size in pixels for a terminal viewport.
	CellSize = 1
	// FrameInterval paces input handling, stepping and redraws.
	FrameInterval = 16 * time.Millisecond

	speedStep = 5
	// wheelDelta is the deltaY a single wheel notch contributes.
	wheelDelta = 100
	upperHalf  = '▀'
)

// UI binds an engine to a tcell screen.
type UI struct {
	screen   tcell.Screen
	eng      *engine.Engine
	renderer *render.Renderer
	raster   *render.Raster

	cols, rows int
	buttons    tcell.ButtonMask
	dirty      bool
	quit       bool
}

// New wraps an initialised screen. The caller owns the screen and calls Fini.
func New(screen tcell.Screen, eng *engine.Engine, renderer *render.Renderer) *UI {
	u := &UI{screen: screen, eng: eng, renderer: renderer, dirty: true}
	eng.OnRender(func() { u.dirty = true })
	screen.EnableMouse()
	u.resize()
	return u
}

// Run processes events and ticks until the user quits.
func (u *UI) Run() {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	u.Draw()
	for !u.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			u.HandleEvent(ev)
		case now := <-ticker.C:
			u.eng.Tick(now)
			u.Draw()
		}
	}
}

// Done reports whether the user asked to quit.
func (u *UI) Done() bool { return u.quit }

// HandleEvent applies one tcell event to the engine.
func (u *UI) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
		u.resize()
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	cfg := u.eng.Tools()
	switch ev.Rune() {
	case 'q', 'Q':
		u.quit = true
	case ' ':
		u.eng.Toggle()
	case 'n', 'N':
		u.eng.StepOnce()
	case 'c', 'C':
		u.eng.Clear()
	case 'm', 'M':
		u.eng.SetTool(tool.Move)
	case 'b', 'B':
		u.eng.SetTool(tool.Brush)
	case 'e', 'E':
		u.eng.SetTool(tool.Eraser)
	case 's', 'S':
		if cfg.Shape == tool.Circle {
			u.eng.SetBrushShape(tool.Square)
		} else {
			u.eng.SetBrushShape(tool.Circle)
		}
	case 'p', 'P':
		u.eng.SetPattern(pattern.Next(cfg.Pattern))
	case 'r', 'R':
		u.eng.RotatePattern()
	case '+', '=':
		u.eng.SetBrushSize(cfg.BrushSize + 1)
	case '-', '_':
		u.eng.SetBrushSize(cfg.BrushSize - 1)
	case '[':
		u.eng.SetSpeed(u.eng.Speed() - speedStep)
	case ']':
		u.eng.SetSpeed(u.eng.Speed() + speedStep)
	}
	u.dirty = true
}

// handleMouse turns tcell's button masks into press, drag and release edges.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	// Centre of the upper pixel of the terminal cell.
	x, y := float64(cx)+0.5, float64(cy*2)+0.5
	btns := ev.Buttons()

	switch {
	case btns&tcell.WheelUp != 0:
		u.eng.Wheel(-wheelDelta, x, y)
		return
	case btns&tcell.WheelDown != 0:
		u.eng.Wheel(wheelDelta, x, y)
		return
	}

	pressed := btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case u.buttons == 0 && pressed != 0:
		u.eng.PointerDown(x, y, toolButton(pressed))
	case u.buttons != 0 && pressed == 0:
		u.eng.PointerUp()
	case pressed != 0:
		u.eng.PointerMove(x, y)
	}
	u.buttons = pressed
}

func toolButton(b tcell.ButtonMask) tool.Button {
	switch {
	case b&tcell.Button1 != 0:
		return tool.ButtonLeft
	case b&tcell.Button3 != 0:
		return tool.ButtonMiddle
	}
	return tool.ButtonRight
}

func (u *UI) resize() {
	u.cols, u.rows = u.screen.Size()
	world := max(1, u.rows-1)
	u.raster = render.NewRaster(max(1, u.cols), world*2)
	u.dirty = true
}

// Draw repaints the screen if anything changed since the last frame.
func (u *UI) Draw() {
	if !u.dirty {
		return
	}
	u.dirty = false
	w, h := u.raster.Size()
	u.renderer.Draw(u.raster, u.eng.Viewport(), u.eng.Store(), float64(w), float64(h))
	for cy := 0; cy < h/2; cy++ {
		for cx := 0; cx < w; cx++ {
			fg, bg := CellColors(u.raster, cx, cy)
			style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
			u.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	u.drawStatus(h / 2)
	u.screen.Show()
}

func (u *UI) drawStatus(row int) {
	if row >= u.rows {
		return
	}
	state := "paused"
	if u.eng.Running() {
		state = "running"
	}
	cfg := u.eng.Tools()
	line := fmt.Sprintf(" gen %d  pop %d  %s  %d/s  %s %d %s  pattern %s  zoom %.1f",
		u.eng.Generation(), u.eng.Population(), state, u.eng.Speed(),
		cfg.Tool, cfg.BrushSize, cfg.Shape, cfg.Pattern, u.eng.Viewport().Zoom)
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(line)
	for x := 0; x < u.cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		u.screen.SetContent(x, row, r, nil, style)
	}
}

// CellColors returns the upper and lower pixel colours of terminal cell
// (cx, cy).
func CellColors(r *render.Raster, cx, cy int) (top, bottom color.RGBA) {
	return r.At(cx, cy*2), r.At(cx, cy*2+1)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
