package render

import (
	"image/color"
	"testing"

	"lifegrid/internal/chunk"
	"lifegrid/internal/core"
	"lifegrid/internal/viewport"
)

type rect struct{ x, y, w, h float64 }

type recorder struct {
	fills int
	rects []rect
	lines int
}

func (r *recorder) Fill(color.RGBA) { r.fills++ }

func (r *recorder) FillRect(x, y, w, h float64, _ color.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h})
}

func (r *recorder) Line(_, _, _, _, _ float64, _ color.RGBA) { r.lines++ }

func TestDrawOnlyVisibleCells(t *testing.T) {
	store := chunk.NewStore()
	store.SetCell(0, 0, 1)
	store.SetCell(2, 3, 1)
	store.SetCell(500, 500, 1)
	store.SetCell(-500, 0, 1)

	view := viewport.New(10, 0.1, 5)
	rec := &recorder{}
	st := New().Draw(rec, view, store, 100, 100)

	if rec.fills != 1 {
		t.Fatalf("background filled %d times, want 1", rec.fills)
	}
	if st.Cells != 2 || len(rec.rects) != 2 {
		t.Fatalf("drew %d cells, want 2", st.Cells)
	}
	if rec.rects[0] != (rect{0, 0, 10, 10}) && rec.rects[1] != (rect{0, 0, 10, 10}) {
		t.Fatalf("origin cell not drawn at (0,0): %+v", rec.rects)
	}
	if st.Chunks != 1 {
		t.Fatalf("visited %d chunks, want 1", st.Chunks)
	}
}

func TestDrawDoesNotAllocateChunks(t *testing.T) {
	store := chunk.NewStore()
	store.SetCell(1, 1, 1)
	view := viewport.New(20, 0.1, 5)
	view.SetZoom(0.1)
	New().Draw(&recorder{}, view, store, 4000, 4000)
	if store.Len() != 1 {
		t.Fatalf("renderer allocated chunks: %d", store.Len())
	}
}

func TestGridThreshold(t *testing.T) {
	store := chunk.NewStore()
	view := viewport.New(10, 0.1, 5)
	r := New()

	rec := &recorder{}
	st := r.Draw(rec, view, store, 100, 50)
	// Columns -1..11 and rows -1..6.
	if st.GridLines != 13+8 || rec.lines != st.GridLines {
		t.Fatalf("grid lines = %d, want 21", st.GridLines)
	}

	view.SetZoom(GridMinZoom)
	if st := r.Draw(&recorder{}, view, store, 100, 50); st.GridLines != 0 {
		t.Fatalf("grid drawn at zoom %v", view.Zoom)
	}

	view.SetZoom(1)
	r.ShowGrid = false
	if st := r.Draw(&recorder{}, view, store, 100, 50); st.GridLines != 0 {
		t.Fatal("grid drawn while disabled")
	}
}

func TestGapAboveZoomThreshold(t *testing.T) {
	store := chunk.NewStore()
	store.SetCell(1, 1, 1)
	view := viewport.New(10, 0.1, 5)

	view.SetZoom(GapMinZoom)
	rec := &recorder{}
	New().Draw(rec, view, store, 200, 200)
	if rec.rects[0] != (rect{30, 30, 30, 30}) {
		t.Fatalf("cell at zoom 3 = %+v, want no gap", rec.rects[0])
	}

	view.SetZoom(4)
	rec = &recorder{}
	New().Draw(rec, view, store, 200, 200)
	if rec.rects[0] != (rect{41, 41, 38, 38}) {
		t.Fatalf("cell at zoom 4 = %+v, want 1px inset", rec.rects[0])
	}
}

func TestSparseWalkMatchesDenseWalk(t *testing.T) {
	store := chunk.NewStore()
	core.NewRNG(3).Scatter(core.Rect{MinRow: -200, MinCol: -200, MaxRow: 200, MaxCol: 200}, 0.001, func(row, col int) {
		store.SetCell(row, col, 1)
	})
	view := viewport.New(20, 0.1, 5)
	view.SetZoom(0.1)
	view.CenterOn(0, 0, 1000, 1000)

	// Zoomed out, few chunks: the store walk is used.
	sparse := New().Draw(&recorder{}, view, store, 1000, 1000)

	// Count directly.
	cells := view.VisibleCells(1000, 1000)
	want := 0
	store.Each(func(p core.Point) {
		if cells.Contains(p) {
			want++
		}
	})
	if sparse.Cells != want {
		t.Fatalf("drew %d cells, want %d", sparse.Cells, want)
	}
}

func TestVisibleChunksFloors(t *testing.T) {
	got := VisibleChunks(core.Rect{MinRow: -1, MinCol: -21, MaxRow: 19, MaxCol: 20})
	want := core.Rect{MinRow: -1, MinCol: -2, MaxRow: 0, MaxCol: 1}
	if got != want {
		t.Fatalf("VisibleChunks = %+v, want %+v", got, want)
	}
}

func TestRasterDrawsCells(t *testing.T) {
	store := chunk.NewStore()
	store.SetCell(0, 1, 1)
	view := viewport.New(1, 0.1, 5)
	r := New()
	r.ShowGrid = false
	ras := NewRaster(4, 3)
	r.Draw(ras, view, store, 4, 3)
	theme := DefaultTheme()
	if ras.At(1, 0) != theme.Cell {
		t.Fatalf("pixel (1,0) = %v, want cell colour", ras.At(1, 0))
	}
	if ras.At(0, 0) != theme.Background || ras.At(2, 2) != theme.Background {
		t.Fatal("background not painted")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#10b981")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 255}) {
		t.Fatalf("parsed %v", c)
	}
	short, err := ParseHex("fff")
	if err != nil || short != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("short form parsed to %v, %v", short, err)
	}
	for _, bad := range []string{"", "#12345", "#ggg000"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) should fail", bad)
		}
	}
	if _, err := ParseTheme("#000", "nope", "#fff"); err == nil {
		t.Fatal("ParseTheme should reject a bad grid colour")
	}
}
