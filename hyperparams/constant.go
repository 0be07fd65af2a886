// Package hyperparams provides implementations of neuralnet.HyperParameter, used to give the
// learning rate at each iteration of training.
package hyperparams

import (
	nn "github.com/sharnoff/neuralnet"
)

var (
	_ nn.HyperParameter = Constant(0)
	_ nn.HyperParameter = Step(0)
)

type constant float64

// Constant returns a HyperParameter whose value never changes.
func Constant(value float64) *constant {
	c := constant(value)
	return &c
}

func (c constant) TypeString() string {
	return "constant"
}

func (c *constant) Value(iter int) float64 {
	return float64(*c)
}
