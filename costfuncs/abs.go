package costfuncs

import (
	"math"

	nn "github.com/sharnoff/neuralnet"
	"gonum.org/v1/gonum/floats"
)

type abs struct{}

// Abs returns the absolute value cost function: the average distance between each output and its
// target. Its derivatives are all ±1 (or 0 where an output is exact), so every output is trained
// with an error of the same magnitude.
func Abs() nn.CostFunction {
	return abs{}
}

// L1 is a proxy for Abs
func L1() nn.CostFunction {
	return Abs()
}

func (abs) TypeString() string {
	return "abs"
}

func (abs) Cost(outs, targets []float64) float64 {
	return floats.Distance(outs, targets, 1) / float64(len(outs))
}

func (abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if outs[i] != targets[i] {
			ds[i] = math.Copysign(1, outs[i]-targets[i])
		}
	}

	return ds
}
