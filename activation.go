package neuralnet

import (
	"math"

	"github.com/pkg/errors"
)

// Activation selects the function a Unit applies to its weighted input sum.
type Activation int8

const (
	// Sigmoid is the logistic function, 1 / (1 + e^-x). Its range is (0, 1) and it is the only
	// Activation with a derivative.
	Sigmoid Activation = iota

	// Step outputs 1 if x >= 0, otherwise 0.
	Step

	// Sign outputs 1 if x >= 0, otherwise -1.
	Sign
)

var activationNames = map[Activation]string{
	Sigmoid: "sigmoid",
	Step:    "step",
	Sign:    "sign",
}

func (a Activation) String() string {
	if s, ok := activationNames[a]; ok {
		return s
	}

	return "unknown"
}

// ParseActivation returns the Activation whose String() is s.
func ParseActivation(s string) (Activation, error) {
	for a, name := range activationNames {
		if name == s {
			return a, nil
		}
	}

	return 0, errors.Errorf("Unknown activation function %q", s)
}

// Differentiable returns whether or not the derivative of the Activation is defined.
func (a Activation) Differentiable() bool {
	return a == Sigmoid
}

// Apply returns the value of the activation function at x.
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Step:
		if x >= 0 {
			return 1
		}
		return 0
	case Sign:
		if x >= 0 {
			return 1
		}
		return -1
	default:
		return sigmoid(x)
	}
}

// ApplyDeriv returns the value of the activation function at x, along with its derivative at x.
// ApplyDeriv returns ErrNoDerivative if the Activation is not Differentiable.
func (a Activation) ApplyDeriv(x float64) (float64, float64, error) {
	if !a.Differentiable() {
		return 0, 0, ErrNoDerivative
	}

	s := sigmoid(x)

	// s * (1 - s) loses precision as |x| grows large. s / (1 + e^x) doesn't, but changes results.
	return s, s * (1 - s), nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
