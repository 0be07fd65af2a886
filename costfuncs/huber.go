package costfuncs

import (
	"math"

	nn "github.com/sharnoff/neuralnet"
)

// huber is quadratic for differences within δ of the target and linear beyond
type huber float64

// Huber returns the Huber loss, which behaves like MSE for differences up to δ and like Abs (scaled
// by δ) beyond them. δ must be positive.
func Huber(δ float64) nn.CostFunction {
	if !(δ > 0) {
		panic("Huber δ must be > 0")
	}

	return huber(δ)
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Cost(outs, targets []float64) float64 {
	δ := float64(h)

	var sum float64
	for i := range outs {
		if d := math.Abs(outs[i] - targets[i]); d <= δ {
			sum += d * d / 2
		} else {
			sum += δ * (d - δ/2)
		}
	}

	return sum / float64(len(outs))
}

// Derivs gives the difference, clipped to [-δ, δ]
func (h huber) Derivs(outs, targets []float64) []float64 {
	δ := float64(h)

	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = math.Max(-δ, math.Min(δ, outs[i]-targets[i]))
	}

	return ds
}
