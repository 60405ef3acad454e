package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies the matrix into a gonum *mat.Dense.
//
// gonum does not allow empty dense matrices, so nil is returned for an
// empty matrix.
func (m *Matrix) ToGonum() *mat.Dense {
	if m.Shape().Empty() {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies any gonum matrix into a new Matrix.
func FromGonum(src mat.Matrix) *Matrix {
	r, c := src.Dims()
	out := Zeros(Shape{Rows: r, Cols: c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}
	return out
}
