package climanager

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nn "github.com/sharnoff/neuralnet"
)

func scanner(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func TestQueryTF(t *testing.T) {
	var out bytes.Buffer

	v, quit, err := QueryTF(scanner("maybe", "YES"), &out)
	require.NoError(t, err)
	assert.True(t, v)
	assert.False(t, quit)
	assert.Equal(t, "Please enter 'y' or 'n': ", out.String())

	v, quit, err = QueryTF(scanner("n"), &out)
	require.NoError(t, err)
	assert.False(t, v || quit)

	_, quit, err = QueryTF(scanner("q"), &out)
	require.NoError(t, err)
	assert.True(t, quit)

	_, _, err = QueryTF(scanner(), &out)
	assert.Equal(t, ErrInputClosed, errors.Cause(err))
}

func TestQueryInt(t *testing.T) {
	var out bytes.Buffer

	v, quit, err := QueryInt(scanner("two", "9", " 2 "), &out, Between(0, 3))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 2, v)
	assert.Equal(t, "Please enter an integer: Please enter a value between 0 and 3: ", out.String())

	v, _, err = QueryInt(scanner("-40"), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, -40, v)

	_, quit, err = QueryInt(scanner("quit"), &out, nil)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestQueryFloat(t *testing.T) {
	var out bytes.Buffer

	v, _, err := QueryFloat(scanner("x", "1.5", "0.25"), &out, Between(0.0, 1.0))
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	_, _, err = QueryFloat(scanner("1.5"), &out, nil)
	assert.Error(t, err)
}

func TestQueryChoice(t *testing.T) {
	var out bytes.Buffer

	v, _, err := QueryChoice(scanner("mexican", "thai"), &out, "French", "Thai")
	require.NoError(t, err)
	assert.Equal(t, "Thai", v)
	assert.Equal(t, "Please enter one of: French, Thai: ", out.String())
}

func TestMakeNet(t *testing.T) {
	input := strings.Join([]string{nn.KindMultilayer, "3", "0", "4", "2", "ones"}, "\n")

	net, err := MakeNet(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.IsType(t, &nn.Multilayer{}, net)

	m := net.(*nn.Multilayer)
	assert.Equal(t, 3, m.InputSize())
	assert.Equal(t, 4, m.HiddenSize())
	assert.Equal(t, 2, m.OutputSize())
	assert.Equal(t, []float64{1, 1, 1}, m.HiddenUnit(3).Weights())
}

func TestMakeNetPerceptron(t *testing.T) {
	var out bytes.Buffer
	input := strings.Join([]string{"perceptron", "2", "1", "xavier", "step"}, "\n")

	net, err := MakeNet(strings.NewReader(input), &out)
	require.NoError(t, err)
	require.IsType(t, &nn.Perceptron{}, net)
	assert.Equal(t, nn.Step, net.(*nn.Perceptron).Unit(0).Activation())
	assert.Contains(t, out.String(), "Number of inputs")
}

func TestMakeNetAborted(t *testing.T) {
	_, err := MakeNet(strings.NewReader("perceptron\nq\n"), nil)
	assert.Equal(t, ErrAborted, err)

	_, err = MakeNet(strings.NewReader("perceptron\n2\n"), nil)
	assert.Equal(t, ErrInputClosed, errors.Cause(err))
}
