package neuralnet

import (
	"bytes"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUnit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewUnitWeights([]float64{0.5, -1, 2e-9}).Encode(&buf))
	assert.Equal(t, "3 0.5 -1 2e-09", buf.String())

	u, err := DecodeUnit(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1, 2e-9}, u.Weights())
}

func TestEncodePerceptron(t *testing.T) {
	p, err := NewPerceptronWeights(2, 2, []float64{0.5, -1, 0.25, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	assert.Equal(t, "2 2 2\n2 0.5 -1\n2 0.25 3\n", buf.String())
}

func TestEncodeMultilayer(t *testing.T) {
	m, err := NewMultilayerWeights(1, 2, 1, []float64{2, 3, -4, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Equal(t, "1 1 2 1\n1 2\n1 3\n2 -4 5\n", buf.String())
}

var awkwardWeights = []float64{0.1, 1.0 / 3, -2.5e-10, math.Pi, -math.MaxFloat64, math.SmallestNonzeroFloat64, 0, 7}

func TestPerceptronRoundTrip(t *testing.T) {
	p, err := NewPerceptronWeights(4, 2, awkwardWeights)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	got, err := DecodePerceptron(&buf)
	require.NoError(t, err)

	for i := 0; i < p.OutputSize(); i++ {
		assert.Equal(t, p.Unit(i).Weights(), got.Unit(i).Weights())
	}

	in := []float64{0.3, -0.6, 1e-3, 2}
	want, err := p.Evaluate(in)
	require.NoError(t, err)
	outs, err := got.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, want, outs)
}

func TestMultilayerRoundTrip(t *testing.T) {
	weights := append(append([]float64{}, awkwardWeights[:6]...), 0.75, -0.125, 1e100, 3)
	m, err := NewMultilayerWeights(3, 2, 2, weights)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), KindMultilayer+"\n"))

	net, err := Decode(&buf)
	require.NoError(t, err)
	require.IsType(t, &Multilayer{}, net)
	got := net.(*Multilayer)

	assert.Equal(t, 3, got.InputSize())
	assert.Equal(t, 2, got.HiddenSize())
	assert.Equal(t, 2, got.OutputSize())

	in := []float64{1, -1, 0.5}
	want, err := m.Evaluate(in)
	require.NoError(t, err)
	outs, err := got.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, want, outs)

	// decoded networks must be evaluated before training
	m2, err := DecodeMultilayer(strings.NewReader("1 1 1 1\n1 2\n1 3\n"))
	require.NoError(t, err)
	assert.Equal(t, ErrNotEvaluated, m2.Train([]float64{1}, []float64{1}, 1))
}

func TestDecodeMalformed(t *testing.T) {
	perceptrons := map[string]string{
		"empty":            "",
		"short header":     "2 1",
		"bad int":          "2 x 1\n2 1 1\n",
		"negative":         "-2 1 1\n",
		"mismatched count": "2 1 2\n2 1 1\n2 1 1\n",
		"wrong weights":    "2 1 1\n3 1 1 1\n",
		"bad float":        "2 1 1\n2 1 one\n",
		"truncated":        "2 2 2\n2 1 1\n2 1",
	}

	for name, s := range perceptrons {
		_, err := DecodePerceptron(strings.NewReader(s))
		assert.Equal(t, ErrFormat, errors.Cause(err), name)
	}

	multilayers := map[string]string{
		"mismatched count": "1 2 1 1\n1 1\n1 1\n",
		"wrong hidden":     "2 1 1 1\n1 1\n1 1\n",
		"wrong output":     "1 1 2 1\n1 1\n1 1\n1 1\n",
		"truncated":        "1 1 1 1\n1 1\n",
	}

	for name, s := range multilayers {
		_, err := DecodeMultilayer(strings.NewReader(s))
		assert.Equal(t, ErrFormat, errors.Cause(err), name)
	}
}

func TestDecodeHugeCounts(t *testing.T) {
	_, err := DecodeUnit(strings.NewReader("99999999999999999 1"))
	assert.Equal(t, ErrFormat, errors.Cause(err))

	inputs := map[string]string{
		"perceptron units":  "perceptron\n1 99999999999999999 99999999999999999\n",
		"perceptron inputs": "perceptron\n99999999999999999 1 1\n99999999999999999 1 2\n",
		"hidden units":      "multilayer\n1 1 4000000000000000000 1\n",
		"output units":      "multilayer\n1 3000000000 1 3000000000\n1 1\n",
		"overflow":          "multilayer\n1 1 99999999999999999999999 1\n",
	}

	for name, s := range inputs {
		_, err := Decode(strings.NewReader(s))
		assert.Equal(t, ErrFormat, errors.Cause(err), name)
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(strings.NewReader("hopfield\n1 1 1\n1 1\n"))
	assert.Equal(t, ErrUnknownKind, errors.Cause(err))

	_, err = Decode(strings.NewReader(""))
	assert.Equal(t, ErrFormat, errors.Cause(err))
}

func TestRegisterKind(t *testing.T) {
	err := RegisterKind(KindPerceptron, func(r io.Reader) (Network, error) { return nil, nil })
	assert.Equal(t, ErrRegisterTwice, errors.Cause(err))

	assert.Error(t, RegisterKind("two words", func(r io.Reader) (Network, error) { return nil, nil }))
	assert.Error(t, RegisterKind("nil-decoder", nil))

	require.NoError(t, RegisterKind("test-fixed", func(r io.Reader) (Network, error) {
		return NewPerceptron(1, 1), nil
	}))

	net, err := Decode(strings.NewReader("test-fixed\n"))
	require.NoError(t, err)
	assert.IsType(t, &Perceptron{}, net)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perceptron")

	p, err := NewPerceptronWeights(3, 1, []float64{1, 1, -1})
	require.NoError(t, err)
	require.NoError(t, Save(p, path, false))

	// the file exists now
	assert.Error(t, Save(p, path, false))
	require.NoError(t, Save(p, path, true))

	net, err := Load(path)
	require.NoError(t, err)
	require.IsType(t, &Perceptron{}, net)
	assert.Equal(t, []float64{1, 1, -1}, net.(*Perceptron).Unit(0).Weights())

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
