// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/nn"
)

// Layer is the forward/backward contract shared by Dense and Activation.
type Layer = nn.Layer

// Parameter represents a learnable matrix owned by a layer.
type Parameter = nn.Parameter

// Layers

// Dense represents a fully connected layer.
type Dense = nn.Dense

// DenseOption configures a Dense layer at construction.
type DenseOption = nn.DenseOption

// NewDense creates a Dense layer with He-initialized weights and zero bias.
//
// Example:
//
//	layer, err := nn.NewDense(784, 128)
func NewDense(inFeatures, outFeatures int, opts ...DenseOption) (*Dense, error) {
	return nn.NewDense(inFeatures, outFeatures, opts...)
}

// MustDense is like NewDense but panics on error.
func MustDense(inFeatures, outFeatures int, opts ...DenseOption) *Dense {
	return nn.MustDense(inFeatures, outFeatures, opts...)
}

// WithRand sets the generator used for weight initialization.
func WithRand(rng *rand.Rand) DenseOption {
	return nn.WithRand(rng)
}

// Activations

// Activation represents an element-wise nonlinearity layer.
type Activation = nn.Activation

// ActivationKind selects the activation function.
type ActivationKind = nn.ActivationKind

// Activation kinds.
const (
	Tanh    = nn.Tanh
	Sigmoid = nn.Sigmoid
)

// NewActivation creates an activation layer of the given kind.
func NewActivation(kind ActivationKind) *Activation {
	return nn.NewActivation(kind)
}

// NewTanh creates a Tanh activation layer.
func NewTanh() *Activation {
	return nn.NewTanh()
}

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Activation {
	return nn.NewSigmoid()
}

// Loss

// MSELoss computes mean squared error and its gradient.
type MSELoss = nn.MSELoss

// Network

// Network is an ordered chain of layers with inference and training.
type Network = nn.Network

// NewNetwork creates a network from the given layers.
//
// Example:
//
//	net := nn.NewNetwork(nn.MustDense(2, 3), nn.NewTanh())
func NewNetwork(layers ...Layer) *Network {
	return nn.NewNetwork(layers...)
}

// History holds per-epoch training losses.
type History = nn.History

// Observer receives (epoch, loss) during training.
type Observer = nn.Observer

// TrainOption configures a Train call.
type TrainOption = nn.TrainOption

// WithObserver registers a per-epoch loss callback.
func WithObserver(fn Observer) TrainOption {
	return nn.WithObserver(fn)
}

// WithReportEvery limits observer calls to every n-th epoch.
func WithReportEvery(n int) TrainOption {
	return nn.WithReportEvery(n)
}

// Errors

var (
	// ErrShapeMismatch reports operand dimensions that violate a contract.
	ErrShapeMismatch = nn.ErrShapeMismatch
	// ErrInvalidState reports Backward without a preceding Forward.
	ErrInvalidState = nn.ErrInvalidState
	// ErrEmptyNetwork reports training a network with no layers.
	ErrEmptyNetwork = nn.ErrEmptyNetwork
	// ErrInvalidArgument reports an out-of-domain scalar argument.
	ErrInvalidArgument = nn.ErrInvalidArgument
)
