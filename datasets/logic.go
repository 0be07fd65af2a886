package datasets

// dataset indexing is: [data index][inputs, outputs][values], as taken by neuralnet.Data

// XOR returns the exclusive-or function of two bits, with Bias as a third input. It is not
// linearly separable, so it needs a hidden layer.
func XOR() [][][]float64 {
	return [][][]float64{
		{{0, 0, Bias}, {0}},
		{{0, 1, Bias}, {1}},
		{{1, 0, Bias}, {1}},
		{{1, 1, Bias}, {0}},
	}
}

// And returns the logical and of two bits, with Bias as a third input.
func And() [][][]float64 {
	return [][][]float64{
		{{0, 0, Bias}, {0}},
		{{0, 1, Bias}, {0}},
		{{1, 0, Bias}, {0}},
		{{1, 1, Bias}, {1}},
	}
}

// Or returns the logical or of two bits, with Bias as a third input.
func Or() [][][]float64 {
	return [][][]float64{
		{{0, 0, Bias}, {0}},
		{{0, 1, Bias}, {1}},
		{{1, 0, Bias}, {1}},
		{{1, 1, Bias}, {1}},
	}
}
