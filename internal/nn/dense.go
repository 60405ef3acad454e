package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x · W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over rows
//   - y is the output with shape [batch_size, out_features]
//
// Weights use He initialization; biases start at zero. Backward applies a
// plain gradient-descent step to both.
//
// Example:
//
//	layer, _ := nn.NewDense(784, 128, nn.WithRand(rand.New(rand.NewSource(1))))
//	output, err := layer.Forward(input) // shape: [N×128]
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter     // [in_features, out_features]
	bias        *Parameter     // [1, out_features]
	input       *matrix.Matrix // captured by Forward, consumed by Backward
}

// DenseOption configures a Dense layer at construction.
type DenseOption func(*denseConfig)

type denseConfig struct {
	rng *rand.Rand
}

// WithRand sets the generator used for weight initialization.
// Without it the layer draws from a clock-seeded generator.
func WithRand(rng *rand.Rand) DenseOption {
	return func(c *denseConfig) {
		c.rng = rng
	}
}

// NewDense creates a new Dense layer.
//
// Parameters:
//   - inFeatures: Number of input features (> 0)
//   - outFeatures: Number of output features (> 0)
//   - opts: Optional configuration (WithRand)
//
// Returns ErrInvalidArgument for non-positive feature counts.
func NewDense(inFeatures, outFeatures int, opts ...DenseOption) (*Dense, error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, fmt.Errorf("NewDense(%d, %d): feature counts must be > 0: %w",
			inFeatures, outFeatures, ErrInvalidArgument)
	}

	cfg := denseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newRand()
	}

	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", He(inFeatures, outFeatures, cfg.rng)),
		bias:        NewParameter("bias", Zeros(1, outFeatures)),
	}, nil
}

// MustDense is like NewDense but panics on error.
func MustDense(inFeatures, outFeatures int, opts ...DenseOption) *Dense {
	d, err := NewDense(inFeatures, outFeatures, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Forward computes y = x · W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (d *Dense) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input.Cols() != d.inFeatures {
		return nil, fmt.Errorf("Dense.Forward: expected input with %d features, got %d: %w",
			d.inFeatures, input.Cols(), ErrShapeMismatch)
	}

	// [batch, in] @ [in, out] = [batch, out]
	output, err := matrix.MatMul(input, d.weight.Matrix())
	if err != nil {
		return nil, fmt.Errorf("Dense.Forward: %w", err)
	}
	output, err = matrix.AddRowVector(output, d.bias.Matrix())
	if err != nil {
		return nil, fmt.Errorf("Dense.Forward: %w", err)
	}

	d.input = input.Clone()
	return output, nil
}

// Backward propagates outputGrad through the layer and updates the
// parameters in place.
//
//	dW = xᵀ · dY         [in, out]
//	db = Σ_rows dY       [1, out]
//	dX = dY · Wᵀ         [batch, in] (pre-update weights)
//	W ← W - dW·lr,  b ← b - db·lr
//
// The step is not divided by the batch size; any normalization comes from
// the loss gradient. Each Backward consumes the input of the preceding
// Forward, so a second Backward without a new Forward returns
// ErrInvalidState.
func (d *Dense) Backward(outputGrad *matrix.Matrix, learningRate float64) (*matrix.Matrix, error) {
	if d.input == nil {
		return nil, fmt.Errorf("Dense.Backward: %w", ErrInvalidState)
	}
	want := matrix.Shape{Rows: d.input.Rows(), Cols: d.outFeatures}
	if !outputGrad.Shape().Equal(want) {
		return nil, shapeError("Dense.Backward", want, outputGrad.Shape())
	}

	weightGrad, err := matrix.MatMul(d.input.T(), outputGrad)
	if err != nil {
		return nil, fmt.Errorf("Dense.Backward: weight gradient: %w", err)
	}
	biasGrad := matrix.SumRows(outputGrad)

	inputGrad, err := matrix.MatMul(outputGrad, d.weight.Matrix().T())
	if err != nil {
		return nil, fmt.Errorf("Dense.Backward: input gradient: %w", err)
	}

	if err := d.weight.Step(weightGrad, learningRate); err != nil {
		return nil, fmt.Errorf("Dense.Backward: %w", err)
	}
	if err := d.bias.Step(biasGrad, learningRate); err != nil {
		return nil, fmt.Errorf("Dense.Backward: %w", err)
	}

	d.input = nil
	return inputGrad, nil
}

// Parameters returns [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// SetWeights replaces the weights with a copy of w ([in_features, out_features]).
func (d *Dense) SetWeights(w *matrix.Matrix) error {
	return d.weight.set(w)
}

// SetBias replaces the bias with a copy of b ([1, out_features]).
func (d *Dense) SetBias(b *matrix.Matrix) error {
	return d.bias.set(b)
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d→%d)", d.inFeatures, d.outFeatures)
}
