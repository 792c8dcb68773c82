//go:build !ebiten

package ui

import (
	"lifegrid/internal/core"
	"lifegrid/internal/viewport"
)

// Editor is the part of the engine the overlay previews.
type Editor interface {
	Viewport() *viewport.Viewport
	Preview() []core.Point
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Editor) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
