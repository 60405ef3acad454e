package dataset

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/matrix"
)

func TestXOR(t *testing.T) {
	x, y := XOR()
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, x.ToRows())
	assert.Equal(t, [][]float64{{0}, {1}, {1}, {0}}, y.ToRows())
}

func TestWaves(t *testing.T) {
	x, y, err := Waves(200, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 200, Cols: 10}, x.Shape())
	require.Equal(t, matrix.Shape{Rows: 200, Cols: 1}, y.Shape())

	var positives int
	for i := 0; i < x.Rows(); i++ {
		row, err := x.Row(i)
		require.NoError(t, err)
		for _, v := range row {
			assert.True(t, v >= -math.Pi && v <= math.Pi, "feature %v out of range", v)
		}

		label := y.Data()[i]
		if WaveScore(row) > 0 {
			assert.Equal(t, 1.0, label, "sample %d", i)
			positives++
		} else {
			assert.Equal(t, 0.0, label, "sample %d", i)
		}
	}
	assert.Positive(t, positives)
	assert.Less(t, positives, 200)
}

func TestWaves_Reproducible(t *testing.T) {
	x1, y1, err := Waves(20, 4, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	x2, y2, err := Waves(20, 4, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.True(t, x1.Equal(x2))
	assert.True(t, y1.Equal(y2))
}

func TestWaves_InvalidSize(t *testing.T) {
	_, _, err := Waves(0, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestWaveScore(t *testing.T) {
	// sin(π/2)·1/2 + cos(0)·2/2
	assert.InDelta(t, 1.5, WaveScore([]float64{math.Pi / 2, 0}), 1e-12)
}

func TestHead(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, Head(m, 2).ToRows())
	assert.Equal(t, 3, Head(m, 10).Rows())

	h := Head(m, 1)
	require.NoError(t, h.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "Head must copy")
}
