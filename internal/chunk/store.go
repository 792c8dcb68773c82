package chunk

import "lifegrid/internal/core"

// Store is a sparse, unbounded grid of cells partitioned into chunks.
// A key that is absent from the map is equivalent to an all-dead chunk.
type Store struct {
	chunks map[Key]*Chunk
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{chunks: make(map[Key]*Chunk)}
}

// Cell returns 1 when the cell at the world coordinate is alive. Reading an
// unallocated chunk reports 0 and does not allocate it.
func (s *Store) Cell(row, col int) uint8 {
	k, lr, lc := Locate(row, col)
	c, ok := s.chunks[k]
	if !ok {
		return 0
	}
	return c.Get(lr, lc)
}

// Alive reports whether the cell at the world coordinate is alive.
func (s *Store) Alive(row, col int) bool { return s.Cell(row, col) != 0 }

// SetCell writes a cell, allocating its chunk when absent.
func (s *Store) SetCell(row, col int, v uint8) {
	k, lr, lc := Locate(row, col)
	c, ok := s.chunks[k]
	if !ok {
		c = &Chunk{}
		s.chunks[k] = c
	}
	c.Set(lr, lc, v)
}

// Clear drops every chunk.
func (s *Store) Clear() {
	s.chunks = make(map[Key]*Chunk)
}

// Len returns the number of allocated chunks.
func (s *Store) Len() int { return len(s.chunks) }

// Chunk returns the chunk stored under k without allocating.
func (s *Store) Chunk(k Key) (*Chunk, bool) {
	c, ok := s.chunks[k]
	return c, ok
}

// Put installs a chunk under k, replacing any previous one. Empty chunks are
// not stored.
func (s *Store) Put(k Key, c *Chunk) {
	if c == nil || c.Empty() {
		delete(s.chunks, k)
		return
	}
	s.chunks[k] = c
}

// Keys returns the keys of all allocated chunks in no particular order.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.chunks))
	for k := range s.chunks {
		keys = append(keys, k)
	}
	return keys
}

// Population counts the alive cells across all chunks.
func (s *Store) Population() int {
	n := 0
	for _, c := range s.chunks {
		n += c.Live()
	}
	return n
}

// Each calls fn for every alive cell. Order is unspecified.
func (s *Store) Each(fn func(p core.Point)) {
	for k, c := range s.chunks {
		EachLive(k, c, fn)
	}
}

// EachLive calls fn with the world coordinates of every alive cell in c.
func EachLive(k Key, c *Chunk, fn func(p core.Point)) {
	origin := k.Origin()
	for i, v := range c.cells {
		if v == 0 {
			continue
		}
		fn(core.Point{Row: origin.Row + i/Size, Col: origin.Col + i%Size})
	}
}

// Bounds returns the smallest rectangle containing every alive cell and false
// when the store holds no alive cells.
func (s *Store) Bounds() (core.Rect, bool) {
	var r core.Rect
	found := false
	s.Each(func(p core.Point) {
		if !found {
			r = core.Rect{MinRow: p.Row, MinCol: p.Col, MaxRow: p.Row, MaxCol: p.Col}
			found = true
			return
		}
		r.MinRow = min(r.MinRow, p.Row)
		r.MinCol = min(r.MinCol, p.Col)
		r.MaxRow = max(r.MaxRow, p.Row)
		r.MaxCol = max(r.MaxCol, p.Col)
	})
	return r, found
}

// Neighborhood is the 3x3 block of chunks centred on one key. Missing chunks
// are nil and read as dead.
type Neighborhood [3][3]*Chunk

// Neighborhood gathers the chunk at k and its eight neighbours.
func (s *Store) Neighborhood(k Key) Neighborhood {
	var n Neighborhood
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n[dr+1][dc+1] = s.chunks[Key{Row: k.Row + dr, Col: k.Col + dc}]
		}
	}
	return n
}

// Get reads a cell relative to the centre chunk. row and col may range over
// [-1, Size] so the ring of cells just outside the chunk is reachable.
func (n *Neighborhood) Get(row, col int) uint8 {
	cr, cc := 1, 1
	switch {
	case row < 0:
		cr, row = 0, row+Size
	case row >= Size:
		cr, row = 2, row-Size
	}
	switch {
	case col < 0:
		cc, col = 0, col+Size
	case col >= Size:
		cc, col = 2, col-Size
	}
	c := n[cr][cc]
	if c == nil {
		return 0
	}
	return c.cells[row*Size+col]
}
