package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// MSELoss computes Mean Squared Error and its gradient.
//
// Loss = Σ (yTrue - yPred)² / n, where n = rows·cols
//
// The mean runs over every element of the batch, not per row.
//
// Example:
//
//	var mse nn.MSELoss
//	loss, _ := mse.Loss(targets, predictions)
//	grad, _ := mse.Gradient(targets, predictions)
type MSELoss struct{}

// Loss computes the mean squared error between yTrue and yPred.
//
// Returns ErrShapeMismatch when the shapes differ. An empty pair yields 0.
func (MSELoss) Loss(yTrue, yPred *matrix.Matrix) (float64, error) {
	if !yTrue.Shape().Equal(yPred.Shape()) {
		return 0, shapeError("MSELoss.Loss", yTrue.Shape(), yPred.Shape())
	}
	n := yTrue.Shape().NumElements()
	if n == 0 {
		return 0, nil
	}

	truth, pred := yTrue.Data(), yPred.Data()
	var sum float64
	for i := range truth {
		diff := truth[i] - pred[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// Gradient computes ∂Loss/∂yPred = 2·(yPred - yTrue) / n.
//
// This is the entry point of every backward pass.
func (MSELoss) Gradient(yTrue, yPred *matrix.Matrix) (*matrix.Matrix, error) {
	if !yTrue.Shape().Equal(yPred.Shape()) {
		return nil, shapeError("MSELoss.Gradient", yTrue.Shape(), yPred.Shape())
	}
	n := yTrue.Shape().NumElements()
	if n == 0 {
		return matrix.Zeros(yTrue.Shape()), nil
	}

	diff, err := matrix.Sub(yPred, yTrue)
	if err != nil {
		return nil, fmt.Errorf("MSELoss.Gradient: %w", err)
	}
	return diff.Scale(2.0 / float64(n)), nil
}
