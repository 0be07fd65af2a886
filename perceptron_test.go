package neuralnet

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerceptronEvaluate(t *testing.T) {
	p, err := NewPerceptronWeights(3, 1, []float64{1, 1, -1})
	require.NoError(t, err)
	assert.Nil(t, p.Outputs())

	outs, err := p.Evaluate([]float64{1, 1, -1})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.InDelta(t, 0.9526, outs[0], 1e-4)
	assert.Equal(t, 1/(1+math.Exp(-3)), outs[0])
	assert.Equal(t, outs, p.Outputs())
}

func TestPerceptronEvaluateIsIdempotent(t *testing.T) {
	p, err := NewPerceptronWeights(2, 3, []float64{0.1, -0.2, 0.3, -0.4, 0.5, -0.6})
	require.NoError(t, err)

	in := []float64{0.7, -1.3}
	first, err := p.Evaluate(in)
	require.NoError(t, err)

	// modifying the result must not affect the Perceptron
	first[0] = 100
	first, _ = p.Evaluate(in)

	second, err := p.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, o := range second {
		assert.True(t, o > 0 && o < 1)
	}
}

func TestPerceptronWeightsLength(t *testing.T) {
	_, err := NewPerceptronWeights(3, 2, []float64{1, 2, 3, 4, 5})
	assert.Equal(t, SizeMismatchError{Expected: 6, Got: 5, What: "weights"}, err)

	p, err := NewPerceptronWeights(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, p.Unit(0).Weights())
	assert.Equal(t, []float64{3, 4}, p.Unit(1).Weights())
	assert.Equal(t, 2, p.InputSize())
	assert.Equal(t, 2, p.OutputSize())
}

func TestPerceptronSizeMismatch(t *testing.T) {
	p := NewPerceptron(3, 2)

	_, err := p.Evaluate([]float64{1, 2})
	assert.IsType(t, SizeMismatchError{}, err)

	err = p.Train([]float64{1, 2}, []float64{1, 1}, 0.1)
	assert.IsType(t, SizeMismatchError{}, err)

	err = p.Train([]float64{1, 2, 3}, []float64{1}, 0.1)
	assert.Equal(t, SizeMismatchError{Expected: 2, Got: 1, What: "errors"}, err)

	// nothing may have changed
	assert.Equal(t, []float64{1, 1, 1}, p.Unit(0).Weights())
	assert.Equal(t, []float64{1, 1, 1}, p.Unit(1).Weights())
}

func TestPerceptronResizedUnit(t *testing.T) {
	p := NewPerceptron(3, 2)
	p.Unit(1).Initialize([]float64{5, 5})

	err := p.Train([]float64{1, 1, 1}, []float64{1, 1}, 1)
	assert.Equal(t, SizeMismatchError{Expected: 3, Got: 2, What: "weights"}, errors.Cause(err))
	assert.Equal(t, []float64{1, 1, 1}, p.Unit(0).Weights())
	assert.Equal(t, []float64{5, 5}, p.Unit(1).Weights())

	_, err = p.Evaluate([]float64{1, 1, 1})
	assert.Equal(t, SizeMismatchError{Expected: 3, Got: 2, What: "weights"}, errors.Cause(err))
	assert.Nil(t, p.Outputs())

	p.Unit(1).Initialize([]float64{0, 0, 0})
	require.NoError(t, p.Train([]float64{1, 1, 1}, []float64{1, 1}, 1))
	assert.Equal(t, []float64{2, 2, 2}, p.Unit(0).Weights())
}

func TestPerceptronNegativeSize(t *testing.T) {
	_, err := NewPerceptronWeights(-2, -3, make([]float64, 6))
	assert.Equal(t, ErrNegativeSize, errors.Cause(err))

	_, err = NewPerceptronWeights(2, -1, nil)
	assert.Equal(t, ErrNegativeSize, errors.Cause(err))

	assert.Panics(t, func() { NewPerceptron(-1, 1) })
}

func TestPerceptronTrain(t *testing.T) {
	p, err := NewPerceptronWeights(2, 2, []float64{0, 0, 1, 1})
	require.NoError(t, err)

	// no Evaluate is needed beforehand
	require.NoError(t, p.Train([]float64{1, -2}, []float64{0.5, -1}, 0.5))
	assert.InDeltaSlice(t, []float64{0.25, -0.5}, p.Unit(0).Weights(), 1e-15)
	assert.InDeltaSlice(t, []float64{0.5, 2}, p.Unit(1).Weights(), 1e-15)

	require.NoError(t, p.Train([]float64{10, 10}, []float64{3, 3}, 0))
	assert.InDeltaSlice(t, []float64{0.25, -0.5}, p.Unit(0).Weights(), 1e-15)
}

func TestPerceptronConverges(t *testing.T) {
	// logical or, with a constant -1 input for the threshold
	data := [][][]float64{
		{{0, 0, -1}, {0}},
		{{0, 1, -1}, {1}},
		{{1, 0, -1}, {1}},
		{{1, 1, -1}, {1}},
	}

	p := NewPerceptron(3, 1)

	epochError := func() float64 {
		var total float64
		for _, d := range data {
			outs, err := p.Evaluate(d[0])
			require.NoError(t, err)
			total += math.Abs(d[1][0] - outs[0])
		}
		return total
	}

	initial := epochError()
	for epoch := 0; epoch < 2000; epoch++ {
		for _, d := range data {
			outs, err := p.Evaluate(d[0])
			require.NoError(t, err)
			require.NoError(t, p.Train(d[0], []float64{d[1][0] - outs[0]}, 0.5))
		}
	}

	assert.Less(t, epochError(), initial/4)
	for _, d := range data {
		outs, err := p.Evaluate(d[0])
		require.NoError(t, err)
		assert.True(t, CorrectRound(outs, d[1]), "inputs %v gave %v", d[0], outs)
	}
}

func TestPerceptronStep(t *testing.T) {
	p, err := NewPerceptronWeights(2, 1, []float64{1, -1})
	require.NoError(t, err)
	p.SetActivation(Sign)

	outs, err := p.Evaluate([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, outs)

	// the classic rule: weights move by the raw error, with no derivative
	require.NoError(t, p.Train([]float64{0, 1}, []float64{2}, 0.5))
	assert.Equal(t, []float64{1, 0}, p.Unit(0).Weights())
}

type constInit float64

func (c constInit) Set(fanIn, fanOut int, ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}

func TestPerceptronRandomize(t *testing.T) {
	p := NewPerceptron(2, 2).Randomize(constInit(0.25))
	assert.Equal(t, []float64{0.25, 0.25}, p.Unit(1).Weights())

	assert.Panics(t, func() { p.Randomize(nil) })
}
