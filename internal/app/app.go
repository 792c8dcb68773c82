//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/engine"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/tool"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 240
	// wheelScale converts ebiten wheel notches into browser-style deltaY units.
	wheelScale = 100
	speedStep  = 5
)

var mouseButtons = []struct {
	mouse ebiten.MouseButton
	tool  tool.Button
}{
	{ebiten.MouseButtonLeft, tool.ButtonLeft},
	{ebiten.MouseButtonMiddle, tool.ButtonMiddle},
	{ebiten.MouseButtonRight, tool.ButtonRight},
}

// Game adapts an engine to the ebiten.Game interface.
type Game struct {
	eng      *engine.Engine
	renderer *render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	world         *ebiten.Image
	width, height int
	dirty         bool
	hudPress      bool
}

// New constructs a Game for the provided engine.
func New(eng *engine.Engine, renderer *render.Renderer) *Game {
	g := &Game{
		eng:      eng,
		renderer: renderer,
		hud:      ui.NewHUD(eng, hudWidth),
		overlay:  ui.NewOverlay(eng),
		dirty:    true,
	}
	eng.OnRender(func() { g.dirty = true })
	return g
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()
	g.handleMouse()
	g.hud.Update(g.width)

	g.eng.Tick(time.Now())
	return nil
}

func (g *Game) handleKeys() {
	cfg := g.eng.Tools()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.eng.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.eng.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.eng.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.renderer.ShowGrid = !g.renderer.ShowGrid
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.hud.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.eng.SetTool(tool.Move)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.eng.SetTool(tool.Brush)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.eng.SetTool(tool.Eraser)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if cfg.Shape == tool.Circle {
			g.eng.SetBrushShape(tool.Square)
		} else {
			g.eng.SetBrushShape(tool.Circle)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.eng.SetPattern(pattern.Next(cfg.Pattern))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.eng.RotatePattern()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.eng.SetBrushSize(cfg.BrushSize + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.eng.SetBrushSize(cfg.BrushSize - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.eng.SetSpeed(g.eng.Speed() - speedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.eng.SetSpeed(g.eng.Speed() + speedStep)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	for _, b := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(b.mouse) {
			continue
		}
		if b.tool == tool.ButtonLeft && g.hud.Click(mx, my) {
			g.hudPress = true
			continue
		}
		g.eng.PointerDown(x, y, b.tool)
	}
	if !g.hudPress {
		g.eng.PointerMove(x, y)
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.eng.PointerUp()
			g.hudPress = false
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !g.hud.Contains(mx, my) {
		// ebiten reports scroll-up as positive; the viewport zooms in on negative deltas.
		g.eng.Wheel(-dy*wheelScale, x, y)
	}
}

// Draw renders the world, then the brush preview and the HUD above it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.world == nil {
		return
	}
	if g.dirty {
		g.renderer.Draw(render.NewScreenCanvas(g.world), g.eng.Viewport(), g.eng.Store(), float64(g.width), float64(g.height))
		g.dirty = false
	}
	screen.DrawImage(g.world, nil)
	mx, my := ebiten.CursorPosition()
	if !g.hud.Contains(mx, my) {
		g.overlay.Draw(screen, mx, my)
	}
	g.hud.Draw(screen)
}

// Layout follows the window size so the grid fills any resized window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height || g.world == nil {
		g.width, g.height = outsideWidth, outsideHeight
		if g.world != nil {
			g.world.Dispose()
		}
		g.world = ebiten.NewImage(max(1, outsideWidth), max(1, outsideHeight))
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
