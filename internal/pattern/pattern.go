// Package pattern holds the fixed catalog of Game of Life stencils that the
// brush can stamp onto the grid.
package pattern

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// None is the brush pattern key meaning "paint single cells".
const None = "none"

// CellWriter is the subset of the chunk store a stamp writes through.
type CellWriter interface {
	SetCell(row, col int, v uint8)
}

// Pattern is a named rectangular 0/1 stencil.
type Pattern struct {
	Key   string
	Name  string
	rows  int
	cols  int
	cells []uint8
}

// Rows returns the stencil height.
func (p Pattern) Rows() int { return p.rows }

// Cols returns the stencil width.
func (p Pattern) Cols() int { return p.cols }

// At returns the stencil value at (row, col).
func (p Pattern) At(row, col int) uint8 { return p.cells[row*p.cols+col] }

// Center is the stencil cell placed on the anchor when stamping.
func (p Pattern) Center() core.Point {
	return core.Point{Row: p.rows / 2, Col: p.cols / 2}
}

// Population counts the live cells of the stencil.
func (p Pattern) Population() int {
	n := 0
	for _, v := range p.cells {
		n += int(v)
	}
	return n
}

// Cells lists the live cells as offsets from the stencil center.
func (p Pattern) Cells() []core.Point {
	center := p.Center()
	out := make([]core.Point, 0, p.Population())
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if p.At(r, c) == 1 {
				out = append(out, core.Point{Row: r - center.Row, Col: c - center.Col})
			}
		}
	}
	return out
}

// Rotate returns the stencil turned clockwise by quarterTurns. Negative turns
// rotate counter-clockwise.
func (p Pattern) Rotate(quarterTurns int) Pattern {
	turns := core.Mod(quarterTurns, 4)
	out := p
	for i := 0; i < turns; i++ {
		out = out.rotateOnce()
	}
	return out
}

func (p Pattern) rotateOnce() Pattern {
	out := Pattern{Key: p.Key, Name: p.Name, rows: p.cols, cols: p.rows, cells: make([]uint8, len(p.cells))}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			// (r, c) moves to (c, rows-1-r) when turned clockwise.
			out.cells[c*out.cols+(p.rows-1-r)] = p.At(r, c)
		}
	}
	return out
}

// Stamp ORs the stencil onto w with its center on (row, col). Cells outside
// the live stencil entries are left untouched.
func (p Pattern) Stamp(w CellWriter, row, col int) {
	for _, off := range p.Cells() {
		w.SetCell(row+off.Row, col+off.Col, 1)
	}
}

// parse builds a pattern from rows of '.' (dead) and 'O' (alive).
func parse(key, name string, rows ...string) Pattern {
	if len(rows) == 0 {
		panic(fmt.Sprintf("pattern %q: no rows", key))
	}
	cols := len(rows[0])
	cells := make([]uint8, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("pattern %q: row %d has %d columns, want %d", key, i, len(row), cols))
		}
		for _, ch := range row {
			switch ch {
			case 'O':
				cells = append(cells, 1)
			case '.':
				cells = append(cells, 0)
			default:
				panic(fmt.Sprintf("pattern %q: unexpected %q in row %d", key, ch, i))
			}
		}
	}
	return Pattern{Key: strings.ToLower(key), Name: name, rows: len(rows), cols: cols, cells: cells}
}
