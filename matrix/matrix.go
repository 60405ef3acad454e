// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// Shape is the (rows, cols) pair of a matrix.
type Shape = matrix.Shape

// Errors
var (
	// ErrShapeMismatch reports operand dimensions that violate an operation's constraint.
	ErrShapeMismatch = matrix.ErrShapeMismatch
	// ErrInvalidDimensions reports a negative dimension.
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
	// ErrOutOfRange reports an index outside the matrix.
	ErrOutOfRange = matrix.ErrOutOfRange
)

// Creation

// New creates a rows×cols zero matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// Zeros creates a zero matrix of the given shape.
func Zeros(shape Shape) *Matrix {
	return matrix.Zeros(shape)
}

// FromSlice creates a matrix from row-major data (copied).
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// FromRows creates a matrix from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) *Matrix {
	return matrix.MustFromRows(rows)
}

// FromGonum copies a gonum matrix.
func FromGonum(src mat.Matrix) *Matrix {
	return matrix.FromGonum(src)
}

// Operations

// MatMul performs matrix multiplication.
func MatMul(a, b *Matrix) (*Matrix, error) {
	return matrix.MatMul(a, b)
}

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return matrix.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	return matrix.Sub(a, b)
}

// Hadamard returns the element-wise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return matrix.Hadamard(a, b)
}

// AddRowVector adds a 1×cols row to every row of a.
func AddRowVector(a, row *Matrix) (*Matrix, error) {
	return matrix.AddRowVector(a, row)
}

// SumRows returns the column-wise sum of a as a 1×cols matrix.
func SumRows(a *Matrix) *Matrix {
	return matrix.SumRows(a)
}
