package initializers

import (
	nn "github.com/sharnoff/neuralnet"
)

var (
	_ nn.Initializer = Random(Uniform())
	_ nn.Initializer = VarianceScaling()
)

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Set is the implementation of neuralnet.Initializer
func (r random) Set(fanIn, fanOut int, ws []float64) {
	for i := range ws {
		ws[i] = r.Gen()
	}
}

type constant float64

// Constant returns an Initializer that sets every weight to v.
func Constant(v float64) constant {
	return constant(v)
}

// Set is the implementation of neuralnet.Initializer
func (c constant) Set(fanIn, fanOut int, ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
