package matrix

import (
	"math"
	"math/rand"
)

// Randomize fills the matrix in place with draws from N(0, 1) scaled by
// sqrt(2/rows), the He initialization heuristic.
//
// rng supplies the draws so initialization is reproducible with a seeded
// generator. An empty matrix is left unchanged.
func (m *Matrix) Randomize(rng *rand.Rand) {
	if m.rows == 0 {
		return
	}
	scale := math.Sqrt(2.0 / float64(m.rows))
	for i := range m.data {
		m.data[i] = rng.NormFloat64() * scale
	}
}
