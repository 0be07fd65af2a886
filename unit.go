package neuralnet

import (
	"gonum.org/v1/gonum/floats"
)

// Unit is a single neuron: a weighted sum of its inputs passed through an activation function.
// The number of weights is the number of inputs the Unit expects, and only changes through
// Initialize.
//
// The zero value is a Unit with no inputs and a Sigmoid activation; it should be given weights
// with Initialize before it is used.
type Unit struct {
	weights []float64
	act     Activation
}

// NewUnit returns a sigmoid Unit with nInputs weights, all set to 1.
func NewUnit(nInputs int) *Unit {
	u := new(Unit)
	u.weights = make([]float64, nInputs)
	for i := range u.weights {
		u.weights[i] = 1
	}

	return u
}

// NewUnitWeights returns a sigmoid Unit whose weights are a copy of the ones given. The number of
// inputs is implied by len(weights).
func NewUnitWeights(weights []float64) *Unit {
	u := new(Unit)
	u.Initialize(weights)
	return u
}

// Initialize replaces the weights of the Unit with a copy of those given. The number of inputs
// changes to len(weights).
func (u *Unit) Initialize(weights []float64) {
	u.weights = make([]float64, len(weights))
	copy(u.weights, weights)
}

// SetActivation sets the activation function of the Unit, returning it.
func (u *Unit) SetActivation(a Activation) *Unit {
	u.act = a
	return u
}

// Activation returns the activation function of the Unit.
func (u *Unit) Activation() Activation {
	return u.act
}

// NumInputs returns the number of inputs expected by the Unit.
func (u *Unit) NumInputs() int {
	return len(u.weights)
}

// Weights returns a copy of the weights of the Unit.
func (u *Unit) Weights() []float64 {
	ws := make([]float64, len(u.weights))
	copy(ws, u.weights)
	return ws
}

// Weight returns the weight for the input at index i. Index-out-of-bounds panics are allowed to go
// through.
func (u *Unit) Weight(i int) float64 {
	return u.weights[i]
}

// input is the input function: the sum of each input multiplied by its weight
func (u *Unit) input(inputs []float64) (float64, error) {
	if err := checkSize("inputs", len(u.weights), len(inputs)); err != nil {
		return 0, err
	}

	return floats.Dot(inputs, u.weights), nil
}

// Evaluate returns the output of the Unit for the given inputs. If len(inputs) is not the number
// of inputs to the Unit, Evaluate returns type SizeMismatchError.
func (u *Unit) Evaluate(inputs []float64) (float64, error) {
	x, err := u.input(inputs)
	if err != nil {
		return 0, err
	}

	return u.act.Apply(x), nil
}

// EvaluateWithDerivative is the same as Evaluate, but additionally returns the derivative of the
// activation function at the weighted sum of the inputs. This is what back-propagation consumes.
//
// Returns ErrNoDerivative if the activation function of the Unit is not differentiable.
func (u *Unit) EvaluateWithDerivative(inputs []float64) (float64, float64, error) {
	x, err := u.input(inputs)
	if err != nil {
		return 0, 0, err
	}

	return u.act.ApplyDeriv(x)
}

// AdjustWeights applies the delta rule to each weight:
//
//	weights[i] += inputs[i] * signal * rate
//
// signal is used as given: a raw error for a Perceptron, or an error already multiplied by the
// derivative of the activation function for back-propagation.
//
// If len(inputs) is not the number of inputs to the Unit, AdjustWeights returns type
// SizeMismatchError and the weights are untouched.
func (u *Unit) AdjustWeights(inputs []float64, signal, rate float64) error {
	if err := checkSize("inputs", len(u.weights), len(inputs)); err != nil {
		return err
	}

	floats.AddScaled(u.weights, signal*rate, inputs)
	return nil
}
