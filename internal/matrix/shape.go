package matrix

import "fmt"

// Shape is the (rows, cols) pair of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns Rows*Cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Empty reports whether the shape has no elements.
func (s Shape) Empty() bool {
	return s.Rows == 0 || s.Cols == 0
}

// Validate checks that both dimensions are non-negative.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("shape %v: %w", s, ErrInvalidDimensions)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// T returns the transposed shape.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

func (s Shape) String() string {
	return fmt.Sprintf("[%d×%d]", s.Rows, s.Cols)
}
