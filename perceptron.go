package neuralnet

import (
	"github.com/pkg/errors"
)

// Perceptron is a single layer of output Units, each connected directly to every input. Training
// follows the classic perceptron learning rule: each Unit's weights move by the error of its own
// output, with no derivative weighting.
type Perceptron struct {
	nInputs int

	units []*Unit

	// outputs from the most recent call to Evaluate; nil before the first one
	outputs []float64
}

var perceptronSizes = []string{"inputs", "outputs"}

// NewPerceptron returns a Perceptron with sigmoid output Units whose weights are all 1. If either
// size is negative, NewPerceptron will panic with an error whose cause is ErrNegativeSize.
func NewPerceptron(nInputs, nOutputs int) *Perceptron {
	if err := checkSizes(perceptronSizes, nInputs, nOutputs); err != nil {
		panic(err)
	}

	p := &Perceptron{nInputs: nInputs, units: make([]*Unit, nOutputs)}
	for i := range p.units {
		p.units[i] = NewUnit(nInputs)
	}

	return p
}

// NewPerceptronWeights returns a Perceptron whose output Units take their weights from the given
// flat slice, nInputs at a time, in order of Unit. weights must have length nInputs * nOutputs,
// else type SizeMismatchError is returned. Negative sizes give an error with cause ErrNegativeSize.
func NewPerceptronWeights(nInputs, nOutputs int, weights []float64) (*Perceptron, error) {
	if err := checkSizes(perceptronSizes, nInputs, nOutputs); err != nil {
		return nil, err
	} else if err := checkSize("weights", nInputs*nOutputs, len(weights)); err != nil {
		return nil, err
	}

	p := &Perceptron{nInputs: nInputs, units: make([]*Unit, nOutputs)}
	for i := range p.units {
		p.units[i] = NewUnitWeights(weights[i*nInputs : (i+1)*nInputs])
	}

	return p, nil
}

// SetActivation sets the activation function of every output Unit, returning the Perceptron.
// Step and Sign give the hard-threshold perceptron of the classic learning rule.
func (p *Perceptron) SetActivation(a Activation) *Perceptron {
	for _, u := range p.units {
		u.SetActivation(a)
	}

	return p
}

// Randomize sets the weights of every output Unit with the given Initializer, returning the
// Perceptron. If init is nil, Randomize will panic with type NilArgError.
func (p *Perceptron) Randomize(init Initializer) *Perceptron {
	if init == nil {
		panic(NilArgError{"Initializer"})
	}

	for _, u := range p.units {
		init.Set(p.nInputs, len(p.units), u.weights)
	}

	return p
}

// InputSize returns the number of inputs to the Perceptron.
func (p *Perceptron) InputSize() int {
	return p.nInputs
}

// OutputSize returns the number of outputs (and output Units) of the Perceptron.
func (p *Perceptron) OutputSize() int {
	return len(p.units)
}

// Unit returns the output Unit at index i. The Unit is not a copy. If its number of inputs is
// changed with Initialize, Evaluate and Train will fail with type SizeMismatchError until it is
// restored.
func (p *Perceptron) Unit(i int) *Unit {
	return p.units[i]
}

// checkUnits makes sure that every Unit in the layer still expects numInputs inputs, so that a
// failure is found before any Unit is evaluated or adjusted
func checkUnits(layer string, units []*Unit, numInputs int) error {
	for i, u := range units {
		if err := checkSize("weights", numInputs, u.NumInputs()); err != nil {
			return errors.Wrapf(err, "Bad %s unit %d", layer, i)
		}
	}

	return nil
}

// Outputs returns a copy of the outputs from the most recent call to Evaluate, or nil if Evaluate
// has not been called.
func (p *Perceptron) Outputs() []float64 {
	if p.outputs == nil {
		return nil
	}

	outs := make([]float64, len(p.outputs))
	copy(outs, p.outputs)
	return outs
}

// Evaluate is the implementation of Network. Each output is its Unit evaluated on the inputs.
func (p *Perceptron) Evaluate(inputs []float64) ([]float64, error) {
	if err := checkSize("inputs", p.nInputs, len(inputs)); err != nil {
		return nil, err
	} else if err := checkUnits("output", p.units, p.nInputs); err != nil {
		return nil, err
	}

	if len(p.outputs) != len(p.units) {
		p.outputs = make([]float64, len(p.units))
	}

	for i, u := range p.units {
		out, err := u.Evaluate(inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to evaluate output unit %d", i)
		}

		p.outputs[i] = out
	}

	return p.Outputs(), nil
}

// Train is the implementation of Network. Each output Unit is adjusted by its error in errs:
//
//	weights[i] += inputs[i] * errs[unit] * rate
//
// Train does not depend on a previous call to Evaluate.
func (p *Perceptron) Train(inputs, errs []float64, rate float64) error {
	if err := checkSize("inputs", p.nInputs, len(inputs)); err != nil {
		return err
	} else if err := checkSize("errors", len(p.units), len(errs)); err != nil {
		return err
	} else if err := checkUnits("output", p.units, p.nInputs); err != nil {
		return err
	}

	for i, u := range p.units {
		if err := u.AdjustWeights(inputs, errs[i], rate); err != nil {
			return errors.Wrapf(err, "Failed to adjust output unit %d", i)
		}
	}

	return nil
}
