package tool

import (
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
)

// Shape is the outline of the painting brush.
type Shape string

const (
	Circle Shape = "circle"
	Square Shape = "square"
)

// ParseShape converts a configuration string into a Shape.
func ParseShape(s string) (Shape, bool) {
	switch Shape(s) {
	case Circle, Square:
		return Shape(s), true
	}
	return "", false
}

// CellWriter is the store surface the tools mutate.
type CellWriter = pattern.CellWriter

// Footprint lists the cell offsets covered by a brush of the given radius.
// Both shapes span [-size+1, size-1] on each axis; the circle keeps only
// offsets with dr*dr + dc*dc < size*size.
func Footprint(size int, shape Shape) []core.Point {
	if size < 1 {
		size = 1
	}
	span := 2*size - 1
	out := make([]core.Point, 0, span*span)
	for dr := -size + 1; dr < size; dr++ {
		for dc := -size + 1; dc < size; dc++ {
			if shape == Circle && dr*dr+dc*dc >= size*size {
				continue
			}
			out = append(out, core.Point{Row: dr, Col: dc})
		}
	}
	return out
}

// Paint writes value into every cell of the brush footprint around center.
func Paint(w CellWriter, center core.Point, size int, shape Shape, value uint8) {
	for _, off := range Footprint(size, shape) {
		p := center.Add(off)
		w.SetCell(p.Row, p.Col, value)
	}
}
