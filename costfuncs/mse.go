package costfuncs

import (
	nn "github.com/sharnoff/neuralnet"
	"gonum.org/v1/gonum/floats"
)

type mse struct{}

// MSE returns the mean squared error cost function: the average of half of each squared
// difference. Its derivatives are outputs - targets.
func MSE() nn.CostFunction {
	return mse{}
}

// L2 is a proxy for MSE
func L2() nn.CostFunction {
	return MSE()
}

func (mse) TypeString() string {
	return "mse"
}

func (mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += d * d
	}

	return sum / (2 * float64(len(outs)))
}

func (mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	floats.SubTo(ds, outs, targets)
	return ds
}
