package chunk

import "lifegrid/internal/core"

const (
	// Size is the edge length of a chunk in cells.
	Size = 20
	// Area is the number of cells stored per chunk.
	Area = Size * Size
)

// Key addresses a chunk by its position in the chunk grid.
type Key struct {
	Row int
	Col int
}

// Origin returns the world coordinates of the chunk's top-left cell.
func (k Key) Origin() core.Point {
	return core.Point{Row: k.Row * Size, Col: k.Col * Size}
}

// Chunk stores Size*Size cells in row-major order, one byte per cell.
type Chunk struct {
	cells [Area]uint8
}

// Index returns the linear slice index for local coordinates.
func Index(row, col int) int { return row*Size + col }

// Cells exposes the backing array so callers can scan it directly.
func (c *Chunk) Cells() *[Area]uint8 { return &c.cells }

// Get returns the cell at local coordinates.
func (c *Chunk) Get(row, col int) uint8 { return c.cells[Index(row, col)] }

// Set writes the cell at local coordinates. Any non-zero value marks it alive.
func (c *Chunk) Set(row, col int, v uint8) {
	if v != 0 {
		v = 1
	}
	c.cells[Index(row, col)] = v
}

// Live counts the alive cells in the chunk.
func (c *Chunk) Live() int {
	n := 0
	for _, v := range c.cells {
		n += int(v)
	}
	return n
}

// Empty reports whether no cell in the chunk is alive.
func (c *Chunk) Empty() bool {
	for _, v := range c.cells {
		if v != 0 {
			return false
		}
	}
	return true
}

// Locate splits a world coordinate into its chunk key and local offsets.
// Negative coordinates floor towards the chunk above/left of the origin.
func Locate(row, col int) (Key, int, int) {
	k := Key{Row: core.FloorDiv(row, Size), Col: core.FloorDiv(col, Size)}
	return k, core.Mod(row, Size), core.Mod(col, Size)
}
