package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

var (
	// ErrShapeMismatch is returned when a layer, the loss or the network
	// receives operands whose dimensions violate its contract. It is the same
	// sentinel as matrix.ErrShapeMismatch, so either can be used with errors.Is.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrInvalidState is returned when Backward is called on a layer that has
	// not seen a Forward call.
	ErrInvalidState = errors.New("nn: backward called before forward")

	// ErrEmptyNetwork is returned when training a network with no layers.
	ErrEmptyNetwork = errors.New("nn: network has no layers")

	// ErrInvalidArgument is returned for out-of-domain scalar arguments
	// (negative epoch count, non-positive feature count, ...).
	ErrInvalidArgument = errors.New("nn: invalid argument")
)

// shapeError wraps ErrShapeMismatch with the failing operation and shapes.
func shapeError(op string, want, got matrix.Shape) error {
	return fmt.Errorf("%s: expected %v, got %v: %w", op, want, got, ErrShapeMismatch)
}
