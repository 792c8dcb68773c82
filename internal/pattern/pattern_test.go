package pattern

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

type cellSet map[core.Point]uint8

func (s cellSet) SetCell(row, col int, v uint8) { s[core.Point{Row: row, Col: col}] = v }

func TestCatalogKeysAndPopulations(t *testing.T) {
	want := map[string]int{
		"glider":  5,
		"lwss":    9,
		"toad":    6,
		"beacon":  8,
		"pulsar":  48,
		"diehard": 7,
		"acorn":   7,
		"gosper":  36,
	}
	keys := Keys()
	if !slices.Equal(keys, []string{"glider", "lwss", "toad", "beacon", "pulsar", "diehard", "acorn", "gosper"}) {
		t.Fatalf("unexpected catalog order %v", keys)
	}
	for _, k := range keys {
		p, ok := Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%q) missing", k)
		}
		if p.Population() != want[k] {
			t.Fatalf("%s population = %d, want %d", k, p.Population(), want[k])
		}
	}
	if _, ok := Lookup("block"); ok {
		t.Fatal("unknown key must not resolve")
	}
	if _, ok := Lookup(None); ok {
		t.Fatal("none is not a pattern")
	}
}

func TestCenterUsesFloor(t *testing.T) {
	p, _ := Lookup("toad")
	if c := p.Center(); c != (core.Point{Row: 1, Col: 2}) {
		t.Fatalf("toad center = %+v, want {1 2}", c)
	}
	g, _ := Lookup("gosper")
	if c := g.Center(); c != (core.Point{Row: 4, Col: 18}) {
		t.Fatalf("gosper center = %+v, want {4 18}", c)
	}
}

func TestStampPlacesRelativeToCenter(t *testing.T) {
	p, _ := Lookup("glider")
	got := cellSet{}
	p.Stamp(got, 10, -10)
	want := []core.Point{{Row: 9, Col: -10}, {Row: 10, Col: -9}, {Row: 11, Col: -11}, {Row: 11, Col: -10}, {Row: 11, Col: -9}}
	if len(got) != len(want) {
		t.Fatalf("stamped %d cells, want %d", len(got), len(want))
	}
	for _, w := range want {
		if got[w] != 1 {
			t.Fatalf("missing stamped cell %+v", w)
		}
	}
}

func TestStampNeverClears(t *testing.T) {
	p, _ := Lookup("beacon")
	got := cellSet{}
	for _, pt := range []core.Point{{Row: 0, Col: 0}, {Row: -1, Col: -1}, {Row: 5, Col: 5}} {
		got.SetCell(pt.Row, pt.Col, 1)
	}
	p.Stamp(got, 0, 0)
	for pt, v := range got {
		if v != 1 {
			t.Fatalf("stamp wrote a dead value at %+v", pt)
		}
	}
	if got[core.Point{Row: 5, Col: 5}] != 1 {
		t.Fatal("cell outside the footprint was cleared")
	}
}

func TestRotate(t *testing.T) {
	g, _ := Lookup("glider")
	r := g.Rotate(1)
	want := parse("glider", "Glider",
		"O..",
		"O.O",
		"OO.",
	)
	if !slices.Equal(r.cells, want.cells) {
		t.Fatalf("rotated glider = %v, want %v", r.cells, want.cells)
	}

	l, _ := Lookup("lwss")
	turned := l.Rotate(1)
	if turned.Rows() != l.Cols() || turned.Cols() != l.Rows() {
		t.Fatalf("rotation did not swap dimensions: %dx%d", turned.Rows(), turned.Cols())
	}
	if back := l.Rotate(4); !slices.Equal(back.cells, l.cells) {
		t.Fatal("four quarter turns must be the identity")
	}
	if ccw := l.Rotate(-1); !slices.Equal(ccw.cells, l.Rotate(3).cells) {
		t.Fatal("-1 turn must equal 3 turns")
	}
}

func TestNextCycles(t *testing.T) {
	key := None
	seen := []string{}
	for i := 0; i < len(catalog)+1; i++ {
		key = Next(key)
		seen = append(seen, key)
	}
	if seen[0] != "glider" || seen[len(seen)-1] != None {
		t.Fatalf("unexpected cycle %v", seen)
	}
	if Next("bogus") != "glider" {
		t.Fatal("unknown key should restart at the first pattern")
	}
}
