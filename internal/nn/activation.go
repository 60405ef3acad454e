package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// ActivationKind selects the element-wise function of an Activation layer.
type ActivationKind int

const (
	// Tanh applies tanh(x); values land in (-1, 1).
	Tanh ActivationKind = iota
	// Sigmoid applies 1 / (1 + exp(-x)); values land in (0, 1).
	Sigmoid
)

// Apply evaluates the activation at x.
func (k ActivationKind) Apply(x float64) float64 {
	switch k {
	case Tanh:
		return math.Tanh(x)
	case Sigmoid:
		return sigmoid(x)
	default:
		panic(fmt.Sprintf("nn: unknown activation kind %d", int(k)))
	}
}

// Derivative evaluates the activation's derivative at x.
//
//	tanh'(x)    = 1 - tanh(x)²
//	sigmoid'(x) = s(x)·(1 - s(x))
func (k ActivationKind) Derivative(x float64) float64 {
	switch k {
	case Tanh:
		t := math.Tanh(x)
		return 1 - t*t
	case Sigmoid:
		s := sigmoid(x)
		return s * (1 - s)
	default:
		panic(fmt.Sprintf("nn: unknown activation kind %d", int(k)))
	}
}

func (k ActivationKind) String() string {
	switch k {
	case Tanh:
		return "Tanh"
	case Sigmoid:
		return "Sigmoid"
	default:
		return fmt.Sprintf("ActivationKind(%d)", int(k))
	}
}

func (k ActivationKind) valid() bool {
	return k == Tanh || k == Sigmoid
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Activation is a stateless element-wise nonlinearity layer.
//
// It has no learnable parameters; the learning rate passed to Backward is
// ignored.
//
// Example:
//
//	tanh := nn.NewTanh()
//	output, _ := tanh.Forward(input)  // Values in range (-1, 1)
type Activation struct {
	kind  ActivationKind
	input *matrix.Matrix // captured by Forward, consumed by Backward
}

// NewActivation creates an activation layer of the given kind.
//
// Panics on a kind other than Tanh or Sigmoid.
func NewActivation(kind ActivationKind) *Activation {
	if !kind.valid() {
		panic(fmt.Sprintf("nn: unknown activation kind %d", int(kind)))
	}
	return &Activation{kind: kind}
}

// NewTanh creates a Tanh activation layer.
func NewTanh() *Activation {
	return NewActivation(Tanh)
}

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Activation {
	return NewActivation(Sigmoid)
}

// Kind returns the activation kind.
func (a *Activation) Kind() ActivationKind {
	return a.kind
}

// Forward applies the activation to every element of input.
func (a *Activation) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	a.input = input.Clone()
	return input.Apply(a.kind.Apply), nil
}

// Backward returns dX = dY ⊙ f'(x) for the input seen by the last Forward
// and consumes that input.
func (a *Activation) Backward(outputGrad *matrix.Matrix, _ float64) (*matrix.Matrix, error) {
	if a.input == nil {
		return nil, fmt.Errorf("%s.Backward: %w", a.kind, ErrInvalidState)
	}
	inputGrad, err := matrix.Hadamard(outputGrad, a.input.Apply(a.kind.Derivative))
	if err != nil {
		return nil, fmt.Errorf("%s.Backward: %w", a.kind, err)
	}
	a.input = nil
	return inputGrad, nil
}

// Parameters returns nil (activations have no learnable parameters).
func (a *Activation) Parameters() []*Parameter {
	return nil
}

func (a *Activation) String() string {
	return a.kind.String()
}
