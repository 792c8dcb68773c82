//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from and writes back to.
type Source interface {
	Name() string
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// HUD renders the status and parameter panel in the top-right corner of the
// window.
type HUD struct {
	src      Source
	width    int
	height   int
	visible  bool
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	status   []string
	title    string

	controls []hudControlState
	panelX   int

	pixel *ebiten.Image
}

// statusKeys are the read-only values listed above the controls.
var statusKeys = []string{"generation", "population", "running", "tool", "shape", "pattern"}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, visible: true, title: buildTitle(src.Name())}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	controls := src.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	h.height = controlsTop + len(h.controls)*lineHeight + panelPadding
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Contains reports whether the screen point lies on the visible panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || !h.visible || h.width <= 0 {
		return false
	}
	return pointInRect(x, y, image.Rect(h.panelX, 0, h.panelX+h.width, h.height))
}

// Update refreshes the cached snapshot and positions the panel against the
// right edge of a screen screenWidth pixels wide.
func (h *HUD) Update(screenWidth int) {
	if h == nil {
		return
	}
	h.panelX = screenWidth - h.width
	h.snapshot = h.src.Parameters()
	h.status = h.status[:0]
	for _, key := range statusKeys {
		if p, ok := h.snapshot.Lookup(key); ok {
			h.status = append(h.status, p.Label+": "+p.Value)
		}
	}
	h.refreshControlValues()
}

// Click handles a left click at screen (x, y). It reports whether the click
// landed on the panel, whether or not it hit a button.
func (h *HUD) Click(x, y int) bool {
	if !h.Contains(x, y) {
		return false
	}
	px := x - h.panelX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, y, state.minusRect) {
			h.applyAdjustment(state, -1)
			break
		}
		if pointInRect(px, y, state.plusRect) {
			h.applyAdjustment(state, 1)
			break
		}
	}
	return true
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.panelX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		target, ok := nextInt(state, direction)
		if !ok {
			return
		}
		if h.src.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.floatValue = float64(target)
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		target, ok := nextFloat(state, direction)
		if !ok {
			return
		}
		if h.src.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

// nextInt returns the clamped value one step away, and false when clamping
// leaves the value unchanged.
func nextInt(state *hudControlState, direction int) (int, bool) {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.Max > state.control.Min {
		target = max(int(math.Round(state.control.Min)), min(int(math.Round(state.control.Max)), target))
	}
	return target, target != state.intValue
}

func nextFloat(state *hudControlState, direction int) (float64, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.Max > state.control.Min {
		target = math.Max(state.control.Min, math.Min(state.control.Max, target))
	}
	return target, math.Abs(target-state.floatValue) >= 1e-9
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, headerY+(i+1)*statusSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := h.peek(state, -1)
		_, plusEnabled := h.peek(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}
}

func (h *HUD) peek(state *hudControlState, direction int) (float64, bool) {
	switch state.control.Type {
	case core.ParamTypeInt:
		v, ok := nextInt(state, direction)
		return float64(v), ok
	case core.ParamTypeFloat:
		return nextFloat(state, direction)
	}
	return 0, false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func buildTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 8 + 6*statusSpacing
)
