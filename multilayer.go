package neuralnet

import (
	"github.com/pkg/errors"
)

// Multilayer is a feed-forward network with one hidden layer, trained by back-propagation. Every
// Unit uses the Sigmoid activation.
//
// Evaluate caches the hidden outputs and the derivative of each Unit's activation; Train consumes
// those caches, scaling the derivatives in place into the error signals it propagates. The caches
// are undefined until Evaluate has been called, so Train returns ErrNotEvaluated until then.
type Multilayer struct {
	nInputs int

	hidden, output []*Unit

	// scratch from the most recent call to Evaluate
	hiddenOutputs   []float64
	hiddenGradients []float64
	outputs         []float64
	outputGradients []float64

	// evaluated is whether or not Evaluate has ever succeeded; fresh is whether or not the
	// gradients are from a call to Evaluate that hasn't been trained on yet
	evaluated, fresh bool
}

var multilayerSizes = []string{"inputs", "hidden units", "outputs"}

// NewMultilayer returns a Multilayer whose weights are all 1. If any size is negative,
// NewMultilayer will panic with an error whose cause is ErrNegativeSize.
func NewMultilayer(nInputs, nHidden, nOutputs int) *Multilayer {
	if err := checkSizes(multilayerSizes, nInputs, nHidden, nOutputs); err != nil {
		panic(err)
	}

	m := newMultilayer(nInputs, nHidden, nOutputs)
	for j := range m.hidden {
		m.hidden[j] = NewUnit(nInputs)
	}
	for i := range m.output {
		m.output[i] = NewUnit(nHidden)
	}

	return m
}

// NewMultilayerWeights returns a Multilayer whose Units take their weights from the given flat
// slice. The first nInputs * nHidden weights are the input weights of the hidden Units, nInputs at
// a time; the rest (nHidden * nOutputs) are the input weights of the output Units, nHidden at a
// time. If len(weights) is not exactly that, type SizeMismatchError is returned. Negative sizes
// give an error with cause ErrNegativeSize.
func NewMultilayerWeights(nInputs, nHidden, nOutputs int, weights []float64) (*Multilayer, error) {
	if err := checkSizes(multilayerSizes, nInputs, nHidden, nOutputs); err != nil {
		return nil, err
	} else if err := checkSize("weights", nInputs*nHidden+nHidden*nOutputs, len(weights)); err != nil {
		return nil, err
	}

	m := newMultilayer(nInputs, nHidden, nOutputs)

	first := 0
	for j := range m.hidden {
		m.hidden[j] = NewUnitWeights(weights[first : first+nInputs])
		first += nInputs
	}
	for i := range m.output {
		m.output[i] = NewUnitWeights(weights[first : first+nHidden])
		first += nHidden
	}

	return m, nil
}

func newMultilayer(nInputs, nHidden, nOutputs int) *Multilayer {
	return &Multilayer{
		nInputs:         nInputs,
		hidden:          make([]*Unit, nHidden),
		output:          make([]*Unit, nOutputs),
		hiddenOutputs:   make([]float64, nHidden),
		hiddenGradients: make([]float64, nHidden),
		outputs:         make([]float64, nOutputs),
		outputGradients: make([]float64, nOutputs),
	}
}

// Randomize sets the weights of every Unit with the given Initializer, returning the Multilayer.
// If init is nil, Randomize will panic with type NilArgError.
func (m *Multilayer) Randomize(init Initializer) *Multilayer {
	if init == nil {
		panic(NilArgError{"Initializer"})
	}

	for _, u := range m.hidden {
		init.Set(m.nInputs, len(m.hidden), u.weights)
	}
	for _, u := range m.output {
		init.Set(len(m.hidden), len(m.output), u.weights)
	}

	return m
}

// InputSize returns the number of inputs to the Multilayer.
func (m *Multilayer) InputSize() int {
	return m.nInputs
}

// HiddenSize returns the number of hidden Units.
func (m *Multilayer) HiddenSize() int {
	return len(m.hidden)
}

// OutputSize returns the number of outputs (and output Units).
func (m *Multilayer) OutputSize() int {
	return len(m.output)
}

// HiddenUnit returns the hidden Unit at index j. The Unit is not a copy. If its number of inputs
// is changed with Initialize, Evaluate and Train will fail with type SizeMismatchError until it is
// restored.
func (m *Multilayer) HiddenUnit(j int) *Unit {
	return m.hidden[j]
}

// OutputUnit returns the output Unit at index i. The Unit is not a copy. The same restrictions
// apply as for HiddenUnit.
func (m *Multilayer) OutputUnit(i int) *Unit {
	return m.output[i]
}

// Outputs returns a copy of the outputs from the most recent call to Evaluate, or nil if Evaluate
// has not been called.
func (m *Multilayer) Outputs() []float64 {
	return m.copyIfEvaluated(m.outputs)
}

// HiddenOutputs is the same as Outputs, but for the hidden layer.
func (m *Multilayer) HiddenOutputs() []float64 {
	return m.copyIfEvaluated(m.hiddenOutputs)
}

func (m *Multilayer) copyIfEvaluated(vs []float64) []float64 {
	if !m.evaluated {
		return nil
	}

	c := make([]float64, len(vs))
	copy(c, vs)
	return c
}

func (m *Multilayer) checkUnits() error {
	if err := checkUnits("hidden", m.hidden, m.nInputs); err != nil {
		return err
	}

	return checkUnits("output", m.output, len(m.hidden))
}

// Evaluate is the implementation of Network. The hidden layer is evaluated on the inputs, then
// the output layer on the hidden outputs. Both layers record the derivatives of their activations
// for use by Train.
func (m *Multilayer) Evaluate(inputs []float64) ([]float64, error) {
	if err := checkSize("inputs", m.nInputs, len(inputs)); err != nil {
		return nil, err
	} else if err := m.checkUnits(); err != nil {
		return nil, err
	}

	m.fresh = false

	var err error
	for j, u := range m.hidden {
		m.hiddenOutputs[j], m.hiddenGradients[j], err = u.EvaluateWithDerivative(inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to evaluate hidden unit %d", j)
		}
	}

	for i, u := range m.output {
		m.outputs[i], m.outputGradients[i], err = u.EvaluateWithDerivative(m.hiddenOutputs)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to evaluate output unit %d", i)
		}
	}

	m.evaluated, m.fresh = true, true
	return m.Outputs(), nil
}

// Train is the implementation of Network. It back-propagates errs through the state left by the
// most recent call to Evaluate, which should have been given the same inputs.
//
// The output layer is adjusted first, by the derivative of each output times its error. Each
// hidden Unit is then adjusted by its own derivative times the sum of those output signals,
// weighted by its connections to the output Units. Those connection weights are read after the
// output layer has been adjusted.
//
// Train returns ErrNotEvaluated if Evaluate has not been called since the Multilayer was created
// or last trained.
func (m *Multilayer) Train(inputs, errs []float64, rate float64) error {
	if err := checkSize("inputs", m.nInputs, len(inputs)); err != nil {
		return err
	} else if err := checkSize("errors", len(m.output), len(errs)); err != nil {
		return err
	} else if !m.fresh {
		return ErrNotEvaluated
	} else if err := m.checkUnits(); err != nil {
		return err
	}

	// the gradients are scaled in place, so they can't be trained on twice
	m.fresh = false

	for i, u := range m.output {
		m.outputGradients[i] *= errs[i]
		if err := u.AdjustWeights(m.hiddenOutputs, m.outputGradients[i], rate); err != nil {
			return errors.Wrapf(err, "Failed to adjust output unit %d", i)
		}
	}

	for j, u := range m.hidden {
		var s float64
		for i := range m.output {
			s += m.output[i].weights[j] * m.outputGradients[i]
		}
		m.hiddenGradients[j] *= s

		if err := u.AdjustWeights(inputs, m.hiddenGradients[j], rate); err != nil {
			return errors.Wrapf(err, "Failed to adjust hidden unit %d", j)
		}
	}

	return nil
}
