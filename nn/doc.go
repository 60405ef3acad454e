// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers, loss and network container of the
// feed-forward engine.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (y = x·W + b), Activation (Tanh, Sigmoid)
//   - Loss: MSELoss with its analytic gradient
//   - Network: ordered layer chain with Predict and full-batch Train
//   - Parameter: named learnable matrix owned by a layer
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    x := matrix.MustFromRows([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
//	    y := matrix.MustFromRows([][]float64{{0}, {1}, {1}, {0}})
//
//	    net := nn.NewNetwork(
//	        nn.MustDense(2, 4),
//	        nn.NewTanh(),
//	        nn.MustDense(4, 1),
//	        nn.NewTanh(),
//	    )
//
//	    history, err := net.Train(x, y, 5000, 0.1)
//	    prediction, err := net.Predict(x)
//	}
//
// # Training
//
// Every epoch runs a forward pass over the whole batch, computes the MSE
// gradient and walks the layers in reverse. Dense layers subtract
// gradient·learningRate from their weights and bias during that walk.
// There is no mini-batching, momentum or early stopping.
//
// Progress can be observed without affecting the numbers:
//
//	net.Train(x, y, 10000, 0.1,
//	    nn.WithReportEvery(100),
//	    nn.WithObserver(func(epoch int, loss float64) {
//	        fmt.Printf("epoch %d error=%g\n", epoch+1, loss)
//	    }),
//	)
//
// # Reproducibility
//
// Dense weights are drawn from a clock-seeded generator unless a seeded one
// is supplied:
//
//	layer := nn.MustDense(2, 4, nn.WithRand(rand.New(rand.NewSource(1))))
//
// # Errors
//
// Shape violations return ErrShapeMismatch; Backward without a preceding
// Forward returns ErrInvalidState. Match them with errors.Is.
package nn
