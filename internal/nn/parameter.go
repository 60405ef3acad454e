package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Parameter represents a learnable matrix of a layer.
//
// Parameters are owned by their layer and only written by gradient-descent
// steps during Backward.
//
// Example:
//
//	dense, _ := nn.NewDense(2, 3)
//	w := dense.Weight().Matrix()  // [2×3]
//	g := dense.Weight().Grad()    // nil until the first Backward
type Parameter struct {
	name   string         // Parameter name ("weight", "bias")
	matrix *matrix.Matrix // The parameter values
	grad   *matrix.Matrix // Gradient from the most recent step
}

// NewParameter creates a new parameter wrapping m.
func NewParameter(name string, m *matrix.Matrix) *Parameter {
	return &Parameter{
		name:   name,
		matrix: m,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Matrix returns the parameter values.
//
// The returned matrix is the live storage; use Clone to snapshot it.
func (p *Parameter) Matrix() *matrix.Matrix {
	return p.matrix
}

// Grad returns the gradient used in the most recent Step.
//
// Returns nil before the first step.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// Step applies one gradient-descent update in place: p ← p - grad·lr.
func (p *Parameter) Step(grad *matrix.Matrix, lr float64) error {
	if err := p.matrix.SubInPlace(grad, lr); err != nil {
		return err
	}
	p.grad = grad
	return nil
}

// set replaces the parameter values after a shape check.
func (p *Parameter) set(m *matrix.Matrix) error {
	if !m.Shape().Equal(p.matrix.Shape()) {
		return shapeError("Parameter."+p.name, p.matrix.Shape(), m.Shape())
	}
	p.matrix = m.Clone()
	p.grad = nil
	return nil
}
