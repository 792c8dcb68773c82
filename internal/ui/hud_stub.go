//go:build !ebiten

package ui

import "lifegrid/internal/core"

// Source is what the HUD reads from and writes back to.
type Source interface {
	Name() string
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, int) *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Click always reports false in the headless build.
func (h *HUD) Click(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
