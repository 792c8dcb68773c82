// Package engine owns one infinite Game of Life universe together with its
// viewport and editing tools, and exposes the commands a front end issues.
//
// An Engine is not safe for concurrent use. Front ends drive it from a single
// goroutine; the only parallelism is inside a generation step, which reads
// the previous store and publishes a new one when complete.
package engine

import (
	"time"

	"lifegrid/internal/chunk"
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/tool"
	"lifegrid/internal/viewport"
)

const (
	MinSpeed = 1
	MaxSpeed = 240
)

// Config sets up a new engine.
type Config struct {
	Speed   int
	Workers int

	CellSize float64
	MinZoom  float64
	MaxZoom  float64
	Zoom     float64

	Tools tool.Config
}

// DefaultConfig returns a serial engine at 30 generations per second.
func DefaultConfig() Config {
	return Config{
		Speed:    core.DefaultTPS,
		Workers:  1,
		CellSize: viewport.DefaultBaseCellSize,
		MinZoom:  viewport.DefaultMinZoom,
		MaxZoom:  viewport.DefaultMaxZoom,
		Zoom:     1,
		Tools:    tool.DefaultConfig(),
	}
}

// Engine is the simulation state plus the editing surface around it.
type Engine struct {
	store *chunk.Store
	sim   *life.Life
	view  *viewport.Viewport
	tools *tool.Controller
	timer *core.FixedStep

	generation int
	population int
	running    bool
	speed      int

	onRender func()
}

// New constructs an engine with an empty grid, paused at generation 0.
func New(cfg Config) *Engine {
	view := viewport.New(cfg.CellSize, cfg.MinZoom, cfg.MaxZoom)
	if cfg.Zoom > 0 {
		view.SetZoom(cfg.Zoom)
	}
	e := &Engine{
		store: chunk.NewStore(),
		sim:   life.New(cfg.Workers),
		view:  view,
		tools: tool.NewController(view, cfg.Tools),
		timer: core.NewFixedStep(core.DefaultTPS),
	}
	e.SetSpeed(cfg.Speed)
	return e
}

// OnRender registers the callback invoked whenever the grid or view changed.
func (e *Engine) OnRender(fn func()) { e.onRender = fn }

func (e *Engine) redraw() {
	if e.onRender != nil {
		e.onRender()
	}
}

// Name identifies the rule being simulated.
func (e *Engine) Name() string { return e.sim.Name() }

// Store returns the current grid. Tool edits, Stamp and Seed write into it in
// place; Step and Clear replace it with a new store, so a store obtained
// earlier keeps the generation it held.
func (e *Engine) Store() *chunk.Store { return e.store }

// Viewport exposes the pan/zoom transform.
func (e *Engine) Viewport() *viewport.Viewport { return e.view }

// Tools returns the current brush configuration.
func (e *Engine) Tools() tool.Config { return e.tools.Config() }

// Stencil returns the rotated pattern the brush would stamp, if any.
func (e *Engine) Stencil() (pattern.Pattern, bool) { return e.tools.Stencil() }

// Preview lists the cell offsets the active tool would touch on a press.
func (e *Engine) Preview() []core.Point { return e.tools.Preview() }

// Generation is the number of steps taken since the last clear.
func (e *Engine) Generation() int { return e.generation }

// Population is the live cell count after the most recent step. Edits made
// since then are not reflected until the next step; use Store().Population()
// for an exact count.
func (e *Engine) Population() int { return e.population }

// Running reports whether Tick advances the simulation.
func (e *Engine) Running() bool { return e.running }

// Speed is the target number of generations per second.
func (e *Engine) Speed() int { return e.speed }

// Period is the delay between two generations while running.
func (e *Engine) Period() time.Duration { return e.timer.Period() }

// Workers reports the simulator's pool size.
func (e *Engine) Workers() int { return e.sim.Workers() }

// Start resumes the simulation. The first Tick after Start steps at once.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.timer.Reset()
}

// Pause stops the simulation before its next scheduled step.
func (e *Engine) Pause() { e.running = false }

// Toggle starts a paused simulation or pauses a running one.
func (e *Engine) Toggle() {
	if e.running {
		e.Pause()
		return
	}
	e.Start()
}

// StepOnce advances exactly one generation whether or not running.
func (e *Engine) StepOnce() { e.step() }

// Tick steps the simulation if it is running and a period has elapsed since
// the previous step. It reports whether a step happened.
func (e *Engine) Tick(now time.Time) bool {
	if !e.running {
		return false
	}
	if !e.timer.ShouldStepAt(now) {
		return false
	}
	e.step()
	return true
}

func (e *Engine) step() {
	next, pop := e.sim.Step(e.store)
	e.store = next
	e.generation++
	e.population = pop
	e.redraw()
}

// Clear pauses the simulation and empties the grid.
func (e *Engine) Clear() {
	e.Pause()
	e.store = chunk.NewStore()
	e.generation = 0
	e.population = 0
	e.redraw()
}

// SetSpeed sets generations per second, clamped to [MinSpeed, MaxSpeed].
func (e *Engine) SetSpeed(n int) {
	e.speed = max(MinSpeed, min(MaxSpeed, n))
	e.timer.SetTPS(e.speed)
}

// SetTool switches the active tool.
func (e *Engine) SetTool(k tool.Kind) { e.tools.SetTool(k) }

// SetBrushSize sets the brush radius in cells.
func (e *Engine) SetBrushSize(n int) { e.tools.SetBrushSize(n) }

// SetBrushShape sets the brush outline.
func (e *Engine) SetBrushShape(s tool.Shape) { e.tools.SetShape(s) }

// SetPattern selects a stamp pattern, or pattern.None for plain painting.
func (e *Engine) SetPattern(key string) { e.tools.SetPattern(key) }

// RotatePattern turns the stamp pattern by a quarter turn clockwise.
func (e *Engine) RotatePattern() { e.tools.Rotate() }

// SetZoom sets the zoom factor directly, as a zoom slider would.
func (e *Engine) SetZoom(z float64) {
	e.view.SetZoom(z)
	e.redraw()
}

// CenterOn pans the view so cell (row, col) is in the middle of the screen.
func (e *Engine) CenterOn(row, col int, width, height float64) {
	e.view.CenterOn(row, col, width, height)
	e.redraw()
}

// PointerDown forwards a button press at screen (x, y) to the active tool.
func (e *Engine) PointerDown(x, y float64, b tool.Button) {
	if e.tools.PointerDown(e.store, x, y, b) {
		e.redraw()
	}
}

// PointerMove forwards pointer motion.
func (e *Engine) PointerMove(x, y float64) {
	if e.tools.PointerMove(e.store, x, y) {
		e.redraw()
	}
}

// PointerUp ends the current press.
func (e *Engine) PointerUp() { e.tools.PointerUp() }

// Wheel zooms around the pointer.
func (e *Engine) Wheel(deltaY, x, y float64) {
	if e.tools.Wheel(deltaY, x, y) {
		e.redraw()
	}
}

// Stamp places a catalog pattern centred on (row, col). Unknown keys place
// nothing and return false.
func (e *Engine) Stamp(key string, row, col int) bool {
	p, ok := pattern.Lookup(key)
	if !ok {
		return false
	}
	p.Stamp(e.store, row, col)
	e.redraw()
	return true
}

// Seed fills rect with a deterministic random soup and returns the number of
// cells set alive.
func (e *Engine) Seed(seed int64, rect core.Rect, density float64) int {
	n := core.NewRNG(seed).Scatter(rect, density, func(row, col int) {
		e.store.SetCell(row, col, 1)
	})
	if n > 0 {
		e.redraw()
	}
	return n
}
