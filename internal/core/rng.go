package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter calls set for every cell of rect that comes up alive at the given
// density. Cells are visited row-major so a seed always yields the same soup.
func (r *RNG) Scatter(rect Rect, density float64, set func(row, col int)) int {
	n := 0
	for row := rect.MinRow; row <= rect.MaxRow; row++ {
		for col := rect.MinCol; col <= rect.MaxCol; col++ {
			if r.Chance(density) {
				set(row, col)
				n++
			}
		}
	}
	return n
}
