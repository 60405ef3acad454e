package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by matrix operations. Callers match them with
// errors.Is; operations wrap them with the failing operation and shapes.
var (
	// ErrShapeMismatch is returned when operand dimensions violate an
	// operation's constraint (Add with different shapes, MatMul with
	// a.Cols() != b.Rows(), and so on).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidDimensions is returned when a negative dimension is requested.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// shapeErrorf wraps ErrShapeMismatch with the operation name and operand shapes.
func shapeErrorf(op string, a, b Shape) error {
	return fmt.Errorf("%s: %v vs %v: %w", op, a, b, ErrShapeMismatch)
}
