package costfuncs

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nn "github.com/sharnoff/neuralnet"
)

var (
	_ nn.CostFunction = MSE()
	_ nn.CostFunction = Abs()
	_ nn.CostFunction = Huber(1)
	_ nn.CostFunction = CrossEntropy()
)

func TestMSE(t *testing.T) {
	cf := MSE()
	outs, targets := []float64{0.5, 1}, []float64{1, 0}

	assert.Equal(t, (0.5*0.25+0.5*1)/2, cf.Cost(outs, targets))
	assert.Equal(t, []float64{-0.5, 1}, cf.Derivs(outs, targets))
	assert.Zero(t, cf.Cost(targets, targets))
}

func TestLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cf := Logged(Huber(0.5), logger)
	outs, targets := []float64{0.25, 2}, []float64{0, 0}

	assert.Equal(t, Huber(0.5).Cost(outs, targets), cf.Cost(outs, targets))
	assert.Equal(t, Huber(0.5).Derivs(outs, targets), cf.Derivs(outs, targets))
	assert.Equal(t, "huber", cf.TypeString())
	assert.Contains(t, buf.String(), "func=huber")
}

func TestAbs(t *testing.T) {
	cf := Abs()
	outs, targets := []float64{0.25, 1, 0.5}, []float64{1, 0, 0.5}

	assert.Equal(t, 1.75/3, cf.Cost(outs, targets))
	assert.Equal(t, []float64{-1, 1, 0}, cf.Derivs(outs, targets))
}

func TestHuber(t *testing.T) {
	cf := Huber(1)
	outs, targets := []float64{0.5, 3, -2}, []float64{0, 0, 0}

	// 0.5 is inside δ, so quadratic; 3 and -2 are outside, so linear
	assert.InDelta(t, (0.125+2.5+1.5)/3, cf.Cost(outs, targets), 1e-15)
	assert.Equal(t, []float64{0.5, 1, -1}, cf.Derivs(outs, targets))

	assert.Panics(t, func() { Huber(0) })
}

func TestCrossEntropy(t *testing.T) {
	cf := CrossEntropy()

	assert.InDelta(t, -math.Log(0.75), cf.Cost([]float64{0.75}, []float64{1}), 1e-15)
	assert.InDelta(t, -math.Log(0.75), cf.Cost([]float64{0.25}, []float64{0}), 1e-15)

	// for a sigmoid output, multiplying by the derivative gives o - t
	o := 0.3
	ds := cf.Derivs([]float64{o}, []float64{1})
	assert.InDelta(t, o-1, ds[0]*o*(1-o), 1e-15)

	for _, o := range []float64{0, 1} {
		assert.False(t, math.IsInf(cf.Cost([]float64{o}, []float64{1 - o}), 0))
		assert.False(t, math.IsInf(cf.Derivs([]float64{o}, []float64{1 - o})[0], 0))
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, []string{"abs", "cross-entropy", "huber", "mse"}, Names())

	for _, name := range Names() {
		cf, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, cf.TypeString())
	}

	_, err := Get("hinge")
	assert.Error(t, err)
}
