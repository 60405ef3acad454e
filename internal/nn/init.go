package nn

import (
	"math/rand"
	"time"

	"github.com/born-ml/mlp/internal/matrix"
)

// He creates a fanIn×fanOut weight matrix with He initialization.
//
// Values are drawn from N(0, 1) and scaled by sqrt(2/fanIn).
//
// Parameters:
//   - fanIn: Number of input units (rows)
//   - fanOut: Number of output units (cols)
//   - rng: Source of randomness
//
// Returns the initialized matrix.
func He(fanIn, fanOut int, rng *rand.Rand) *matrix.Matrix {
	w := matrix.Zeros(matrix.Shape{Rows: fanIn, Cols: fanOut})
	w.Randomize(rng)
	return w
}

// Zeros creates a zero matrix, used for bias initialization.
func Zeros(rows, cols int) *matrix.Matrix {
	return matrix.Zeros(matrix.Shape{Rows: rows, Cols: cols})
}

// newRand returns a generator seeded from the clock.
func newRand() *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
