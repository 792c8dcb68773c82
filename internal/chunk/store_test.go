package chunk

import (
	"testing"

	"lifegrid/internal/core"
)

var probeCoords = []int{-41, -40, -21, -20, -19, -1, 0, 1, 19, 20, 21, 39, 40, 1 << 40, -(1 << 40)}

func TestSetThenGetIsolated(t *testing.T) {
	for _, r := range probeCoords {
		for _, c := range probeCoords {
			s := NewStore()
			s.SetCell(r, c, 1)
			if s.Cell(r, c) != 1 {
				t.Fatalf("cell (%d,%d) not alive after SetCell", r, c)
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if s.Cell(r+dr, c+dc) != 0 {
						t.Fatalf("setting (%d,%d) leaked into (%d,%d)", r, c, r+dr, c+dc)
					}
				}
			}
			if pop := s.Population(); pop != 1 {
				t.Fatalf("population = %d after one write at (%d,%d)", pop, r, c)
			}
		}
	}
}

func TestLocateNegative(t *testing.T) {
	k, lr, lc := Locate(-1, -21)
	if k != (Key{Row: -1, Col: -2}) {
		t.Fatalf("key = %+v, want {-1 -2}", k)
	}
	if lr != Size-1 || lc != Size-1 {
		t.Fatalf("local = (%d,%d), want (%d,%d)", lr, lc, Size-1, Size-1)
	}
}

func TestReadDoesNotAllocate(t *testing.T) {
	s := NewStore()
	s.SetCell(5, 5, 1)
	before := s.Len()
	for _, r := range probeCoords {
		for _, c := range probeCoords {
			s.Cell(r, c)
		}
	}
	s.Neighborhood(Key{Row: 99, Col: -99})
	if _, ok := s.Chunk(Key{Row: 7, Col: 7}); ok {
		t.Fatal("Chunk lookup reported an unwritten chunk")
	}
	if s.Len() != before {
		t.Fatalf("reads allocated chunks: %d -> %d", before, s.Len())
	}
}

func TestSetCellZeroAndOverwrite(t *testing.T) {
	s := NewStore()
	s.SetCell(3, 4, 7)
	if s.Cell(3, 4) != 1 {
		t.Fatal("non-zero write must store 1")
	}
	s.SetCell(3, 4, 0)
	if s.Alive(3, 4) {
		t.Fatal("cell still alive after writing 0")
	}
	if s.Len() != 1 {
		t.Fatalf("chunk count = %d, want 1", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.SetCell(-30, 30, 1)
	s.SetCell(0, 0, 1)
	s.Clear()
	if s.Len() != 0 || s.Population() != 0 {
		t.Fatalf("store not empty after Clear: %d chunks, %d cells", s.Len(), s.Population())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatal("second Clear left chunks behind")
	}
}

func TestNeighborhoodMatchesCell(t *testing.T) {
	s := NewStore()
	pts := []core.Point{{Row: -1, Col: -1}, {Row: 0, Col: 20}, {Row: 20, Col: 0}, {Row: 19, Col: 19}, {Row: 10, Col: -1}}
	for _, p := range pts {
		s.SetCell(p.Row, p.Col, 1)
	}
	n := s.Neighborhood(Key{})
	for r := -1; r <= Size; r++ {
		for c := -1; c <= Size; c++ {
			if n.Get(r, c) != s.Cell(r, c) {
				t.Fatalf("neighborhood (%d,%d) = %d, store = %d", r, c, n.Get(r, c), s.Cell(r, c))
			}
		}
	}
}

func TestPutDropsEmptyChunks(t *testing.T) {
	s := NewStore()
	s.Put(Key{Row: 1}, &Chunk{})
	if s.Len() != 0 {
		t.Fatal("empty chunk was stored")
	}
	c := &Chunk{}
	c.Set(0, 0, 1)
	s.Put(Key{Row: 1}, c)
	if !s.Alive(Size, 0) {
		t.Fatal("Put chunk not visible through Cell")
	}
}

func TestBoundsAndEach(t *testing.T) {
	s := NewStore()
	if _, ok := s.Bounds(); ok {
		t.Fatal("empty store reported bounds")
	}
	s.SetCell(-25, 3, 1)
	s.SetCell(40, -7, 1)
	r, ok := s.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := core.Rect{MinRow: -25, MinCol: -7, MaxRow: 40, MaxCol: 3}
	if r != want {
		t.Fatalf("bounds = %+v, want %+v", r, want)
	}
	seen := 0
	s.Each(func(core.Point) { seen++ })
	if seen != 2 {
		t.Fatalf("Each visited %d cells, want 2", seen)
	}
}
