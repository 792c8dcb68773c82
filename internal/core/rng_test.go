package core

import (
	"slices"
	"testing"
)

func TestScatterDeterministic(t *testing.T) {
	rect := Rect{MinRow: -5, MinCol: -5, MaxRow: 5, MaxCol: 5}
	collect := func(seed int64) []Point {
		var pts []Point
		NewRNG(seed).Scatter(rect, 0.3, func(row, col int) {
			pts = append(pts, Point{Row: row, Col: col})
		})
		return pts
	}
	a, b := collect(7), collect(7)
	if len(a) == 0 {
		t.Fatal("expected some cells at density 0.3")
	}
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different soups")
	}
	for _, p := range a {
		if !rect.Contains(p) {
			t.Fatalf("cell %+v outside scatter rect", p)
		}
	}
}

func TestScatterDensityBounds(t *testing.T) {
	rect := Rect{MinRow: 0, MinCol: 0, MaxRow: 3, MaxCol: 3}
	rng := NewRNG(1)
	if n := rng.Scatter(rect, 0, func(int, int) {}); n != 0 {
		t.Fatalf("density 0 produced %d cells", n)
	}
	if n := rng.Scatter(rect, 1, func(int, int) {}); n != 16 {
		t.Fatalf("density 1 produced %d cells, want 16", n)
	}
}
