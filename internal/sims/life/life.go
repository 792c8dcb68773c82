package life

import (
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/chunk"
)

// Rule decides the next state of a cell from its state and live neighbours.
type Rule func(alive bool, neighbors uint8) bool

// Conway is B3/S23: survive on 2 or 3 neighbours, birth on exactly 3.
func Conway(alive bool, neighbors uint8) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Life advances a chunked infinite grid one generation at a time. Only
// occupied chunks and the ring of chunks around them are evaluated, so the
// cost follows the live region rather than the world.
type Life struct {
	rule    Rule
	workers int
}

// New returns a Conway simulator evaluating chunks on up to workers
// goroutines. workers <= 1 evaluates serially.
func New(workers int) *Life {
	return NewWithRule(Conway, workers)
}

// NewWithRule is New with a custom transition rule.
func NewWithRule(rule Rule, workers int) *Life {
	if rule == nil {
		rule = Conway
	}
	if workers < 1 {
		workers = 1
	}
	return &Life{rule: rule, workers: workers}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Workers reports the size of the evaluation pool.
func (l *Life) Workers() int { return l.workers }

// Frontier returns every occupied chunk plus its eight neighbours.
func Frontier(s *chunk.Store) []chunk.Key {
	seen := make(map[chunk.Key]struct{}, s.Len()*9)
	keys := make([]chunk.Key, 0, s.Len()*9)
	for _, k := range s.Keys() {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := chunk.Key{Row: k.Row + dr, Col: k.Col + dc}
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				keys = append(keys, n)
			}
		}
	}
	return keys
}

// Step computes the next generation of cur into a new store and returns it
// with its population. cur is only read.
func (l *Life) Step(cur *chunk.Store) (*chunk.Store, int) {
	next := chunk.NewStore()
	keys := Frontier(cur)
	if len(keys) == 0 {
		return next, 0
	}

	results := make([]*chunk.Chunk, len(keys))
	counts := make([]int, len(keys))
	if l.workers <= 1 || len(keys) == 1 {
		for i, k := range keys {
			results[i], counts[i] = l.stepChunk(cur, k)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(l.workers)
		for i, k := range keys {
			g.Go(func() error {
				results[i], counts[i] = l.stepChunk(cur, k)
				return nil
			})
		}
		_ = g.Wait()
	}

	population := 0
	for i, k := range keys {
		if results[i] == nil {
			continue
		}
		next.Put(k, results[i])
		population += counts[i]
	}
	return next, population
}

// stepChunk evaluates every cell of the chunk at k. It returns nil when the
// chunk ends up empty.
func (l *Life) stepChunk(cur *chunk.Store, k chunk.Key) (*chunk.Chunk, int) {
	n := cur.Neighborhood(k)
	var out *chunk.Chunk
	pop := 0
	for r := 0; r < chunk.Size; r++ {
		for c := 0; c < chunk.Size; c++ {
			var neighbors uint8
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					neighbors += n.Get(r+dr, c+dc)
				}
			}
			if !l.rule(n.Get(r, c) == 1, neighbors) {
				continue
			}
			if out == nil {
				out = &chunk.Chunk{}
			}
			out.Set(r, c, 1)
			pop++
		}
	}
	return out, pop
}
