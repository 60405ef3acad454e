package matrix

// MatMul performs matrix multiplication.
//
// Requirements:
//   - (M, K) @ (K, N) -> (M, N)
//
// Returns ErrShapeMismatch when a.Cols() != b.Rows().
//
// Example:
//
//	a, _ := matrix.New(3, 4)
//	b, _ := matrix.New(4, 5)
//	c, _ := matrix.MatMul(a, b) // Shape: [3×5]
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, shapeErrorf("MatMul", a.Shape(), b.Shape())
	}
	c := Zeros(Shape{Rows: a.rows, Cols: b.cols})
	matmulFloat64(c.data, a.data, b.data, a.rows, a.cols, b.cols)
	return c, nil
}

// matmulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j] with the plain
// triple loop. c must be zeroed.
func matmulFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// T returns the transpose: B[j][i] = A[i][j].
func (m *Matrix) T() *Matrix {
	t := Zeros(m.Shape().T())
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Add returns the element-wise sum a + b. Shapes must be identical.
func Add(a, b *Matrix) (*Matrix, error) {
	return zipWith("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a - b. Shapes must be identical.
func Sub(a, b *Matrix) (*Matrix, error) {
	return zipWith("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b. Shapes must be identical.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return zipWith("Hadamard", a, b, func(x, y float64) float64 { return x * y })
}

func zipWith(op string, a, b *Matrix, f func(x, y float64) float64) (*Matrix, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, shapeErrorf(op, a.Shape(), b.Shape())
	}
	out := Zeros(a.Shape())
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

// Scale returns a new matrix with every element multiplied by k.
func (m *Matrix) Scale(k float64) *Matrix {
	return m.Apply(func(x float64) float64 { return x * k })
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := Zeros(m.Shape())
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// AddRowVector adds the 1×cols row vector to every row of a (broadcast).
func AddRowVector(a, row *Matrix) (*Matrix, error) {
	if row.rows != 1 || row.cols != a.cols {
		return nil, shapeErrorf("AddRowVector", a.Shape(), row.Shape())
	}
	out := Zeros(a.Shape())
	for i := 0; i < a.rows; i++ {
		base := i * a.cols
		for j := 0; j < a.cols; j++ {
			out.data[base+j] = a.data[base+j] + row.data[j]
		}
	}
	return out, nil
}

// SumRows returns the column-wise sum of a as a 1×cols matrix:
// out[0][j] = sum_i a[i][j].
func SumRows(a *Matrix) *Matrix {
	out := Zeros(Shape{Rows: 1, Cols: a.cols})
	for i := 0; i < a.rows; i++ {
		base := i * a.cols
		for j := 0; j < a.cols; j++ {
			out.data[j] += a.data[base+j]
		}
	}
	return out
}

// SubInPlace performs m -= delta*k without allocating.
//
// This is the gradient-descent update applied to layer parameters; it is
// the only algebraic operation that mutates its receiver.
func (m *Matrix) SubInPlace(delta *Matrix, k float64) error {
	if !m.Shape().Equal(delta.Shape()) {
		return shapeErrorf("SubInPlace", m.Shape(), delta.Shape())
	}
	for i := range m.data {
		m.data[i] -= delta.data[i] * k
	}
	return nil
}
