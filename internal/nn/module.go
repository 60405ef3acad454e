// Package nn implements the layers, loss and network container of the
// engine.
//
// This package provides:
//   - Layer interface: forward/backward contract shared by all layers
//   - Dense: learnable affine transform y = x·W + b
//   - Activation: stateless element-wise nonlinearity (Tanh, Sigmoid)
//   - MSELoss: mean squared error and its gradient
//   - Network: ordered composition of layers with a full-batch training loop
//
// Gradients are derived by hand per layer type; there is no tape or graph.
package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Layer is the contract shared by every network layer.
//
// Implementations:
//   - *Dense
//   - *Activation
//
// A layer maps an input with N rows to an output with N rows. Backward must
// be preceded by a Forward call on the same instance and receives the
// gradient of the loss with respect to that Forward's output.
type Layer interface {
	// Forward computes the layer output and remembers the input for the
	// following Backward call.
	Forward(input *matrix.Matrix) (*matrix.Matrix, error)

	// Backward consumes the gradient with respect to the layer output and
	// returns the gradient with respect to the layer input. Layers with
	// learnable parameters update them in place using learningRate.
	Backward(outputGrad *matrix.Matrix, learningRate float64) (*matrix.Matrix, error)
}

// Compile-time interface checks.
var (
	_ Layer = (*Dense)(nil)
	_ Layer = (*Activation)(nil)
)
