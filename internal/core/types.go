package core

// Point addresses a single cell of the unbounded world by row and column.
type Point struct {
	Row int
	Col int
}

// Add returns p translated by the provided offset.
func (p Point) Add(o Point) Point { return Point{Row: p.Row + o.Row, Col: p.Col + o.Col} }

// Rect is a block of cells with inclusive bounds on both axes.
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// RectAround returns the square of cells within radius of center.
func RectAround(center Point, radius int) Rect {
	if radius < 0 {
		radius = 0
	}
	return Rect{
		MinRow: center.Row - radius,
		MinCol: center.Col - radius,
		MaxRow: center.Row + radius,
		MaxCol: center.Col + radius,
	}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.MaxRow < r.MinRow || r.MaxCol < r.MinCol }

// Rows returns the number of rows covered.
func (r Rect) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.MaxRow - r.MinRow + 1
}

// Cols returns the number of columns covered.
func (r Rect) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.MaxCol - r.MinCol + 1
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.MinRow && p.Row <= r.MaxRow && p.Col >= r.MinCol && p.Col <= r.MaxCol
}

// FloorDiv divides rounding towards negative infinity. n must be positive.
func FloorDiv(x, n int) int {
	q := x / n
	if x%n != 0 && x < 0 {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of x modulo n. n must be positive.
func Mod(x, n int) int {
	return (x%n + n) % n
}
