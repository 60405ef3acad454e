package nn

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/matrix"
)

func xorData() (x, y *matrix.Matrix) {
	x = matrix.MustFromRows([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	y = matrix.MustFromRows([][]float64{{0}, {1}, {1}, {0}})
	return x, y
}

func xorNetwork(seed int64) *Network {
	net := NewNetwork()
	net.Add(MustDense(2, 4, seeded(seed)))
	net.Add(NewTanh())
	net.Add(MustDense(4, 1, seeded(seed+1)))
	net.Add(NewTanh())
	return net
}

func snapshot(params []*Parameter) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(params))
	for i, p := range params {
		out[i] = p.Matrix().Clone()
	}
	return out
}

// TestNetwork_XOR trains 2→4→1 on XOR and checks that the loss drops and
// every prediction sits on the right side of the Tanh sign convention.
func TestNetwork_XOR(t *testing.T) {
	x, y := xorData()
	net := xorNetwork(1)

	history, err := net.Train(x, y, 5000, 0.1)
	require.NoError(t, err)
	require.Equal(t, 5000, history.Epochs())
	assert.Less(t, history.Last(), history.First())

	predictions, err := net.Predict(x)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 4, Cols: 1}, predictions.Shape())

	for i, want := range y.Data() {
		got := predictions.Data()[i]
		assert.InDelta(t, want, got, 0.5, "sample %d", i)
	}
}

// TestNetwork_PredictDoesNotMutateParameters snapshots weights around Predict.
func TestNetwork_PredictDoesNotMutateParameters(t *testing.T) {
	x, _ := xorData()
	net := xorNetwork(2)
	params := net.Parameters()
	require.Len(t, params, 4)
	before := snapshot(params)

	_, err := net.Predict(x)
	require.NoError(t, err)

	for i, p := range params {
		assert.True(t, p.Matrix().Equal(before[i]), "parameter %d (%s) changed", i, p.Name())
	}
}

func TestNetwork_TrainMutatesParameters(t *testing.T) {
	x, y := xorData()
	net := xorNetwork(3)
	before := snapshot(net.Parameters())

	_, err := net.Train(x, y, 1, 0.1)
	require.NoError(t, err)

	weight := net.Parameters()[0]
	assert.False(t, weight.Matrix().Equal(before[0]), "first weight should be updated")
}

// TestNetwork_SingleStep pins the step normalization: the MSE gradient is
// divided by rows·cols and Dense does not rescale it further.
func TestNetwork_SingleStep(t *testing.T) {
	dense := fixedDense(t)
	net := NewNetwork(dense)
	x := matrix.MustFromRows([][]float64{{1, 2}})
	y := matrix.MustFromRows([][]float64{{0, 0, 0}})

	history, err := net.Train(x, y, 1, 0.1)
	require.NoError(t, err)
	// output [0.8 1.3 1.7]; (0.64 + 1.69 + 2.89) / 3
	assert.InDelta(t, 1.74, history.First(), 1e-12)

	wantW := matrix.MustFromRows([][]float64{
		{0.5 - 0.1*2*0.8/3, 0.3 - 0.1*2*1.3/3, 0.2 - 0.1*2*1.7/3},
		{0.1 - 0.1*2*2*0.8/3, 0.4 - 0.1*2*2*1.3/3, 0.6 - 0.1*2*2*1.7/3},
	})
	assert.True(t, dense.Weight().Matrix().EqualApprox(wantW, 1e-12), "got %v", dense.Weight().Matrix())

	wantB := matrix.MustFromRows([][]float64{{0.1 - 0.1*2*0.8/3, 0.2 - 0.1*2*1.3/3, 0.3 - 0.1*2*1.7/3}})
	assert.True(t, dense.Bias().Matrix().EqualApprox(wantB, 1e-12), "got %v", dense.Bias().Matrix())
}

func TestNetwork_ZeroEpochs(t *testing.T) {
	x, y := xorData()
	net := xorNetwork(4)
	before := snapshot(net.Parameters())

	history, err := net.Train(x, y, 0, 0.1)
	require.NoError(t, err)
	assert.Zero(t, history.Epochs())
	assert.Zero(t, history.First())
	for i, p := range net.Parameters() {
		assert.True(t, p.Matrix().Equal(before[i]))
	}
}

func TestNetwork_Errors(t *testing.T) {
	x, y := xorData()

	t.Run("empty network", func(t *testing.T) {
		_, err := NewNetwork().Train(x, y, 10, 0.1)
		assert.ErrorIs(t, err, ErrEmptyNetwork)
	})

	t.Run("negative epochs", func(t *testing.T) {
		_, err := xorNetwork(1).Train(x, y, -1, 0.1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("row mismatch", func(t *testing.T) {
		_, err := xorNetwork(1).Train(x, matrix.MustFromRows([][]float64{{0}}), 10, 0.1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("layer mismatch", func(t *testing.T) {
		net := NewNetwork(MustDense(2, 3, seeded(1)), NewTanh(), MustDense(4, 1, seeded(2)))
		_, err := net.Predict(x)
		assert.ErrorIs(t, err, ErrShapeMismatch)

		history, err := net.Train(x, y, 10, 0.1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		assert.Zero(t, history.Epochs())
	})

	t.Run("target width mismatch", func(t *testing.T) {
		wide := matrix.MustFromRows([][]float64{{0, 0}, {1, 1}, {1, 1}, {0, 0}})
		_, err := xorNetwork(1).Train(x, wide, 10, 0.1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestNetwork_Observer(t *testing.T) {
	x, y := xorData()
	var epochs []int
	var losses []float64

	history, err := xorNetwork(5).Train(x, y, 10, 0.1,
		WithReportEvery(5),
		WithObserver(func(epoch int, loss float64) {
			epochs = append(epochs, epoch)
			losses = append(losses, loss)
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 9}, epochs)
	assert.Equal(t, []float64{history.Losses[4], history.Losses[9]}, losses)
}

func TestNetwork_ObserverEveryEpochByDefault(t *testing.T) {
	x, y := xorData()
	calls := 0
	_, err := xorNetwork(5).Train(x, y, 7, 0.1, WithObserver(func(int, float64) { calls++ }))
	require.NoError(t, err)
	assert.Equal(t, 7, calls)
}

func TestNetwork_TrainContextCancelled(t *testing.T) {
	x, y := xorData()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	history, err := xorNetwork(6).TrainContext(ctx, x, y, 100, 0.1)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, history.Epochs())
}

func TestNetwork_TrainContextUnboundedEpochs(t *testing.T) {
	x, y := xorData()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var history *History
	var err error
	require.NotPanics(t, func() {
		history, err = xorNetwork(6).TrainContext(ctx, x, y, math.MaxInt, 0.1)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, history.Epochs())
}

func TestNetwork_TrainContextCancelBetweenEpochs(t *testing.T) {
	x, y := xorData()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	history, err := xorNetwork(6).TrainContext(ctx, x, y, 100, 0.1,
		WithObserver(func(epoch int, _ float64) {
			if epoch == 2 {
				cancel()
			}
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, history.Epochs())
}

func TestNetwork_LayerAccess(t *testing.T) {
	net := xorNetwork(7)
	assert.Equal(t, 4, net.Len())
	_, isDense := net.Layer(0).(*Dense)
	assert.True(t, isDense)
	_, isActivation := net.Layer(1).(*Activation)
	assert.True(t, isActivation)
	assert.Panics(t, func() { net.Layer(4) })
}
