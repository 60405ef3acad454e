// Package matrix implements the dense 2-D float64 container used by the
// network engine.
//
// A Matrix stores rows*cols values in a flat row-major slice. Algebraic
// operations (MatMul, Add, Sub, Hadamard, Scale, T) never modify their
// operands; they validate shapes, allocate a result and return it. A
// constraint violation yields ErrShapeMismatch and no result.
//
// The only mutating methods are Set, Randomize and SubInPlace. The latter is
// reserved for parameter updates during training.
//
// Example:
//
//	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b := matrix.MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c, err := matrix.MatMul(a, b) // [[58 64] [139 154]]
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense row-major matrix of float64 values.
//
// A matrix with zero rows or zero columns is a valid, empty matrix.
type Matrix struct {
	rows int
	cols int
	data []float64 // len(data) == rows*cols
}

// New creates a rows×cols matrix filled with zeros.
//
// Returns ErrInvalidDimensions if either dimension is negative.
func New(rows, cols int) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return Zeros(shape), nil
}

// Zeros creates a zero-filled matrix of the given shape.
//
// Panics if the shape has a negative dimension.
func Zeros(shape Shape) *Matrix {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Matrix{
		rows: shape.Rows,
		cols: shape.Cols,
		data: make([]float64, shape.NumElements()),
	}
}

// FromSlice creates a rows×cols matrix from row-major data.
// The slice is copied.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: shape %v requires %d elements, got %d: %w",
			m.Shape(), rows*cols, len(data), ErrShapeMismatch)
	}
	copy(m.data, data)
	return m, nil
}

// FromRows creates a matrix from a slice of rows.
//
// Every row must have the same length; otherwise ErrShapeMismatch is returned.
// An empty slice yields a 0×0 matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return Zeros(Shape{}), nil
	}
	cols := len(rows[0])
	m := Zeros(Shape{Rows: len(rows), Cols: cols})
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrShapeMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// MustFromRows is like FromRows but panics on error.
// Intended for literals in tests and drivers.
func MustFromRows(rows [][]float64) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the matrix shape.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// Data returns the row-major backing slice.
//
// The slice aliases the matrix storage: writes through it modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("index (%d,%d) in %v: %w", i, j, m.Shape(), ErrOutOfRange)
	}
	return i*m.cols + j, nil
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v to the element at (i, j).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("row %d in %v: %w", i, m.Shape(), ErrOutOfRange)
	}
	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row, nil
}

// ToRows returns the contents as a freshly allocated slice of rows.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether both matrices have the same shape and identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
