package costfuncs

import (
	"math"

	nn "github.com/sharnoff/neuralnet"
)

// outputs are clamped this far inside (0, 1) so that neither the cost nor its derivative is
// infinite
const epsilon float64 = 1e-12

type crossEntropy struct{}

// CrossEntropy returns the binary cross-entropy cost function. Outputs are expected to be in
// (0, 1), as from a sigmoid Unit, and targets to be 0 or 1.
//
// For a sigmoid output, the derivative of the cost times the derivative of the sigmoid is exactly
// output - target.
func CrossEntropy() nn.CostFunction {
	return crossEntropy{}
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() nn.CostFunction {
	return CrossEntropy()
}

func (crossEntropy) TypeString() string {
	return "cross-entropy"
}

func clamp(o float64) float64 {
	return math.Min(math.Max(o, epsilon), 1-epsilon)
}

func (crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		o := clamp(outs[i])
		sum -= targets[i]*math.Log(o) + (1-targets[i])*math.Log1p(-o)
	}

	return sum / float64(len(outs))
}

func (crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		o := clamp(outs[i])
		ds[i] = (o - targets[i]) / (o * (1 - o))
	}

	return ds
}
