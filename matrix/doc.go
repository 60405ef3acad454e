// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense 2-D float64 container of the engine.
//
// # Overview
//
// A Matrix is a row-major rows×cols grid. Algebra returns new matrices and
// never touches its operands:
//   - MatMul: (M, K) @ (K, N) -> (M, N)
//   - T: transpose
//   - Add, Sub, Hadamard: element-wise, identical shapes
//   - Scale: multiply by a scalar
//   - AddRowVector, SumRows: bias broadcast and its reduction
//
// # Basic Usage
//
//	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b := matrix.MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
//
//	c, err := matrix.MatMul(a, b)   // [[58 64] [139 154]]
//	d := a.T()                      // 3×2
//	_, err = matrix.Add(a, d)       // errors.Is(err, matrix.ErrShapeMismatch)
//
// # Interoperability
//
// ToGonum and FromGonum copy to and from gonum's mat package.
package matrix
