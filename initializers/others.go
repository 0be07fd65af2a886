package initializers

// The named schemes are preset VarianceScaling initializers; their mode and factor can still be
// changed afterwards.

// LeCun scales by the number of inputs to the layer: Var = 1 / fanIn.
func LeCun() *varianceScaling {
	return VarianceScaling().In().Factor(1)
}

// He scales by the number of inputs with a factor of 2 (Var = 2 / fanIn), for layers whose
// outputs are not centered on zero.
func He() *varianceScaling {
	return VarianceScaling().In().Factor(2)
}

// Xavier scales by the average of the numbers of inputs and Units in the layer:
// Var = 2 / (fanIn + fanOut).
func Xavier() *varianceScaling {
	return VarianceScaling().Avg().Factor(1)
}

// Glorot is a proxy for Xavier
func Glorot() *varianceScaling {
	return Xavier()
}
