package nn

import (
	"context"
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// maxHistoryPrealloc bounds the loss slice reserved up front by TrainContext.
const maxHistoryPrealloc = 1 << 16

// Network is an ordered, append-only chain of layers.
//
// Each layer's output becomes the next layer's input. Training runs the same
// forward pass, derives the loss gradient with MSELoss and walks the layers
// in reverse, letting Dense layers update their parameters in place.
//
// Example:
//
//	net := nn.NewNetwork(
//	    nn.MustDense(2, 4),
//	    nn.NewTanh(),
//	    nn.MustDense(4, 1),
//	    nn.NewTanh(),
//	)
//
//	history, err := net.Train(x, y, 5000, 0.1)
//	output, err := net.Predict(x)
//
// A Network is not safe for concurrent use.
type Network struct {
	layers []Layer
	loss   MSELoss
}

// NewNetwork creates a network from the given layers, in order.
func NewNetwork(layers ...Layer) *Network {
	return &Network{
		layers: append([]Layer(nil), layers...),
	}
}

// Add appends a layer to the end of the network.
//
// This allows building models incrementally:
//
//	net := nn.NewNetwork()
//	net.Add(nn.MustDense(2, 3))
//	net.Add(nn.NewTanh())
func (n *Network) Add(layer Layer) {
	n.layers = append(n.layers, layer)
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// Parameters returns the learnable parameters of every layer, in layer order.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range n.layers {
		if p, ok := layer.(interface{ Parameters() []*Parameter }); ok {
			params = append(params, p.Parameters()...)
		}
	}
	return params
}

// Predict runs input through every layer's Forward in order.
//
// Predict never touches learnable parameters. It does refresh each layer's
// remembered input, which the training loop relies on.
func (n *Network) Predict(input *matrix.Matrix) (*matrix.Matrix, error) {
	output := input
	for i, layer := range n.layers {
		var err error
		output, err = layer.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return output, nil
}

// Train fits the network to (x, y) with full-batch gradient descent.
//
// Every epoch:
//  1. output = Predict(x)
//  2. loss = MSE(y, output), recorded in the returned History
//  3. grad = ∂MSE/∂output
//  4. grad = layer.Backward(grad, learningRate) for layers in reverse order
//
// The loop always runs exactly epochs iterations. The first error aborts
// training and is returned wrapped with the epoch number.
func (n *Network) Train(x, y *matrix.Matrix, epochs int, learningRate float64, opts ...TrainOption) (*History, error) {
	return n.TrainContext(context.Background(), x, y, epochs, learningRate, opts...)
}

// TrainContext is Train with a cancellation check between epochs.
//
// An epoch in progress always runs to completion. When ctx is done the
// history so far is returned together with the wrapped ctx.Err().
func (n *Network) TrainContext(ctx context.Context, x, y *matrix.Matrix, epochs int, learningRate float64, opts ...TrainOption) (*History, error) {
	if len(n.layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	if epochs < 0 {
		return nil, fmt.Errorf("Train: epochs = %d: %w", epochs, ErrInvalidArgument)
	}
	if x.Rows() != y.Rows() {
		return nil, fmt.Errorf("Train: %d input rows vs %d target rows: %w",
			x.Rows(), y.Rows(), ErrShapeMismatch)
	}

	cfg := newTrainConfig(opts)
	history := &History{Losses: make([]float64, 0, min(epochs, maxHistoryPrealloc))}

	for epoch := 0; epoch < epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return history, fmt.Errorf("Train: stopped before epoch %d: %w", epoch, err)
		}

		loss, err := n.step(x, y, learningRate)
		if err != nil {
			return history, fmt.Errorf("Train: epoch %d: %w", epoch, err)
		}
		history.Losses = append(history.Losses, loss)
		cfg.notify(epoch, loss)
	}

	return history, nil
}

// step runs one forward/backward pass and returns the loss before the update.
func (n *Network) step(x, y *matrix.Matrix, learningRate float64) (float64, error) {
	output, err := n.Predict(x)
	if err != nil {
		return 0, err
	}

	loss, err := n.loss.Loss(y, output)
	if err != nil {
		return 0, err
	}
	grad, err := n.loss.Gradient(y, output)
	if err != nil {
		return 0, err
	}

	for i := len(n.layers) - 1; i >= 0; i-- {
		grad, err = n.layers[i].Backward(grad, learningRate)
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return loss, nil
}
