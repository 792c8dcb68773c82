package core

import "testing"

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		x, n, div, mod int
	}{
		{0, 20, 0, 0},
		{19, 20, 0, 19},
		{20, 20, 1, 0},
		{-1, 20, -1, 19},
		{-20, 20, -1, 0},
		{-21, 20, -2, 19},
		{-40, 20, -2, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.x, c.n); got != c.div {
			t.Fatalf("FloorDiv(%d,%d) = %d, want %d", c.x, c.n, got, c.div)
		}
		if got := Mod(c.x, c.n); got != c.mod {
			t.Fatalf("Mod(%d,%d) = %d, want %d", c.x, c.n, got, c.mod)
		}
		if FloorDiv(c.x, c.n)*c.n+Mod(c.x, c.n) != c.x {
			t.Fatalf("div/mod of %d do not recompose", c.x)
		}
	}
}

func TestRectBounds(t *testing.T) {
	r := RectAround(Point{Row: -2, Col: 3}, 1)
	if r.Rows() != 3 || r.Cols() != 3 {
		t.Fatalf("rect size = %dx%d, want 3x3", r.Rows(), r.Cols())
	}
	if !r.Contains(Point{Row: -3, Col: 4}) {
		t.Fatal("corner cell should be contained")
	}
	if r.Contains(Point{Row: -4, Col: 3}) {
		t.Fatal("cell outside radius reported as contained")
	}
	if !(Rect{MinRow: 1, MaxRow: 0}).Empty() {
		t.Fatal("inverted rect must be empty")
	}
}
