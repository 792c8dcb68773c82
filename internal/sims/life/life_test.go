package life

import (
	"slices"
	"testing"

	"lifegrid/internal/chunk"
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
)

func liveCells(s *chunk.Store) []core.Point {
	var pts []core.Point
	s.Each(func(p core.Point) { pts = append(pts, p) })
	slices.SortFunc(pts, func(a, b core.Point) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return pts
}

func stamped(key string, row, col int) *chunk.Store {
	s := chunk.NewStore()
	p, ok := pattern.Lookup(key)
	if !ok {
		panic("missing pattern " + key)
	}
	p.Stamp(s, row, col)
	return s
}

func run(l *Life, s *chunk.Store, steps int) (*chunk.Store, int) {
	pop := s.Population()
	for i := 0; i < steps; i++ {
		s, pop = l.Step(s)
	}
	return s, pop
}

func TestConwayRule(t *testing.T) {
	for n := uint8(0); n <= 8; n++ {
		if got, want := Conway(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("alive with %d neighbours -> %v, want %v", n, got, want)
		}
		if got, want := Conway(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbours -> %v, want %v", n, got, want)
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	next, pop := New(1).Step(chunk.NewStore())
	if pop != 0 || next.Len() != 0 {
		t.Fatalf("empty grid produced %d cells in %d chunks", pop, next.Len())
	}
	if keys := Frontier(chunk.NewStore()); len(keys) != 0 {
		t.Fatalf("empty grid has frontier %v", keys)
	}
}

func TestLoneCellDies(t *testing.T) {
	s := chunk.NewStore()
	s.SetCell(-7, 13, 1)
	next, pop := New(1).Step(s)
	if pop != 0 || next.Population() != 0 || next.Len() != 0 {
		t.Fatalf("lone cell survived: pop=%d chunks=%d", pop, next.Len())
	}
}

func TestBlockIsStill(t *testing.T) {
	s := chunk.NewStore()
	// Straddle the chunk corner at the origin.
	for _, p := range []core.Point{{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 0}} {
		s.SetCell(p.Row, p.Col, 1)
	}
	want := liveCells(s)
	l := New(1)
	for i := 0; i < 10; i++ {
		var pop int
		s, pop = l.Step(s)
		if pop != 4 {
			t.Fatalf("step %d population = %d, want 4", i+1, pop)
		}
		if !slices.Equal(liveCells(s), want) {
			t.Fatalf("block changed at step %d", i+1)
		}
	}
}

func TestOscillatorsReturnAfterPeriod(t *testing.T) {
	for _, key := range []string{"toad", "beacon", "pulsar"} {
		period := 2
		if key == "pulsar" {
			period = 3
		}
		start := stamped(key, 19, -20)
		want := liveCells(start)
		l := New(1)

		mid, _ := run(l, start, 1)
		if slices.Equal(liveCells(mid), want) {
			t.Fatalf("%s did not change after one step", key)
		}
		end, pop := run(l, start, period)
		if !slices.Equal(liveCells(end), want) {
			t.Fatalf("%s did not return after %d steps", key, period)
		}
		if pop != len(want) {
			t.Fatalf("%s population = %d, want %d", key, pop, len(want))
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	start := stamped("glider", 18, 18)
	end, pop := run(New(1), start, 4)
	if pop != 5 {
		t.Fatalf("glider population = %d, want 5", pop)
	}
	want := liveCells(start)
	for i := range want {
		want[i] = want[i].Add(core.Point{Row: 1, Col: 1})
	}
	if got := liveCells(end); !slices.Equal(got, want) {
		t.Fatalf("glider after 4 steps = %v, want %v", got, want)
	}
}

func TestGliderCrossesIntoNegativeQuadrant(t *testing.T) {
	p, _ := pattern.Lookup("glider")
	start := chunk.NewStore()
	p.Rotate(2).Stamp(start, 1, 1)
	end, pop := run(New(1), start, 40)
	if pop != 5 {
		t.Fatalf("population = %d, want 5", pop)
	}
	r, _ := end.Bounds()
	if r.MaxRow >= 0 || r.MaxCol >= 0 {
		t.Fatalf("rotated glider should travel up-left, bounds %+v", r)
	}
}

// bruteStep evaluates the rule over an explicit window, the naive way.
func bruteStep(s *chunk.Store, window core.Rect) []core.Point {
	var out []core.Point
	for r := window.MinRow; r <= window.MaxRow; r++ {
		for c := window.MinCol; c <= window.MaxCol; c++ {
			var n uint8
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr != 0 || dc != 0 {
						n += s.Cell(r+dr, c+dc)
					}
				}
			}
			if Conway(s.Alive(r, c), n) {
				out = append(out, core.Point{Row: r, Col: c})
			}
		}
	}
	return out
}

func TestMatchesBruteForceOnSoup(t *testing.T) {
	soup := core.Rect{MinRow: -30, MinCol: -30, MaxRow: 29, MaxCol: 29}
	window := core.Rect{MinRow: -31, MinCol: -31, MaxRow: 30, MaxCol: 30}
	s := chunk.NewStore()
	core.NewRNG(2024).Scatter(soup, 0.35, func(row, col int) { s.SetCell(row, col, 1) })

	l := New(1)
	for step := 0; step < 3; step++ {
		want := bruteStep(s, window)
		next, pop := l.Step(s)
		if got := liveCells(next); !slices.Equal(got, want) {
			t.Fatalf("step %d differs from brute force", step+1)
		}
		if pop != len(want) || pop != next.Population() {
			t.Fatalf("step %d population = %d, want %d", step+1, pop, len(want))
		}
		s = next
		window = core.Rect{MinRow: window.MinRow - 1, MinCol: window.MinCol - 1, MaxRow: window.MaxRow + 1, MaxCol: window.MaxCol + 1}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	s := chunk.NewStore()
	core.NewRNG(9).Scatter(core.Rect{MinRow: -60, MinCol: -45, MaxRow: 55, MaxCol: 70}, 0.3, func(row, col int) { s.SetCell(row, col, 1) })

	serial, parallel := New(1), New(8)
	a, b := s, s
	for i := 0; i < 5; i++ {
		var popA, popB int
		a, popA = serial.Step(a)
		b, popB = parallel.Step(b)
		if popA != popB {
			t.Fatalf("step %d population serial=%d parallel=%d", i+1, popA, popB)
		}
		if !slices.Equal(liveCells(a), liveCells(b)) {
			t.Fatalf("step %d serial and parallel grids differ", i+1)
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	s := stamped("acorn", 0, 0)
	before := liveCells(s)
	New(4).Step(s)
	if !slices.Equal(liveCells(s), before) {
		t.Fatal("Step modified the current generation")
	}
}

func TestDeadChunksAreDiscarded(t *testing.T) {
	s := chunk.NewStore()
	s.SetCell(100, 100, 1)
	s.SetCell(0, 0, 1)
	s.SetCell(0, 1, 1)
	s.SetCell(1, 0, 1)
	next, _ := New(1).Step(s)
	if _, ok := next.Chunk(chunk.Key{Row: 5, Col: 5}); ok {
		t.Fatal("chunk with no survivors was kept")
	}
	if next.Len() != 1 {
		t.Fatalf("chunks = %d, want 1", next.Len())
	}
}
