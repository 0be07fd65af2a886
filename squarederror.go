package neuralnet

type squarederror struct{}

// SquaredError is the default CostFunction, used by Train and Test when none is given. Its cost
// is the average of the squared differences; its derivatives are simply outputs - targets, which
// makes the training errors target - output.
func SquaredError() CostFunction {
	return squarederror{}
}

func (c squarederror) TypeString() string {
	return "squared-error"
}

func (c squarederror) Cost(values, targets []float64) float64 {
	var totalErr float64
	for i := range values {
		d := values[i] - targets[i]
		totalErr += d * d
	}

	return totalErr / float64(len(values))
}

func (c squarederror) Derivs(outputs, targets []float64) []float64 {
	ds := make([]float64, len(outputs))
	for i := range outputs {
		ds[i] = outputs[i] - targets[i]
	}

	return ds
}
