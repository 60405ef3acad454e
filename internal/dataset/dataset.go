// Package dataset builds the small in-memory training sets used by the
// command-line drivers: XOR and a synthetic sine/cosine classification task.
package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// XOR returns the four XOR samples (x: 4×2) and their labels (y: 4×1).
func XOR() (x, y *matrix.Matrix) {
	x = matrix.MustFromRows([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	y = matrix.MustFromRows([][]float64{{0}, {1}, {1}, {0}})
	return x, y
}

// Waves generates a binary classification set of samples×dim features drawn
// uniformly from [-π, π].
//
// A sample is labelled 1 when
//
//	Σ_j g_j(x_j)·(j+1)/dim > 0,  g_j = sin for even j, cos for odd j
//
// and 0 otherwise. y has shape samples×1.
func Waves(samples, dim int, rng *rand.Rand) (x, y *matrix.Matrix, err error) {
	if samples <= 0 || dim <= 0 {
		return nil, nil, fmt.Errorf("dataset.Waves(%d, %d): %w", samples, dim, matrix.ErrInvalidDimensions)
	}

	x = matrix.Zeros(matrix.Shape{Rows: samples, Cols: dim})
	y = matrix.Zeros(matrix.Shape{Rows: samples, Cols: 1})
	xs, ys := x.Data(), y.Data()

	for i := 0; i < samples; i++ {
		row := xs[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = (rng.Float64()*2 - 1) * math.Pi
		}
		if WaveScore(row) > 0 {
			ys[i] = 1
		}
	}
	return x, y, nil
}

// WaveScore is the weighted sine/cosine sum that decides a Waves label.
func WaveScore(features []float64) float64 {
	dim := float64(len(features))
	var sum float64
	for j, v := range features {
		weight := float64(j+1) / dim
		if j%2 == 0 {
			sum += math.Sin(v) * weight
		} else {
			sum += math.Cos(v) * weight
		}
	}
	return sum
}

// Head returns a copy of the first n rows of m (all rows if n exceeds them).
func Head(m *matrix.Matrix, n int) *matrix.Matrix {
	if n > m.Rows() {
		n = m.Rows()
	}
	if n < 0 {
		n = 0
	}
	out, err := matrix.FromSlice(n, m.Cols(), m.Data()[:n*m.Cols()])
	if err != nil {
		// n and the slice length are derived from m itself.
		panic(err)
	}
	return out
}
