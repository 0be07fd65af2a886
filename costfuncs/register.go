// Package costfuncs provides implementations of neuralnet.CostFunction, which measure the outputs
// of a Network against their targets and supply the errors it is trained with.
package costfuncs

import (
	"sort"

	"github.com/pkg/errors"
	nn "github.com/sharnoff/neuralnet"
)

var list = map[string]func() nn.CostFunction{
	MSE().TypeString():          func() nn.CostFunction { return MSE() },
	Abs().TypeString():          func() nn.CostFunction { return Abs() },
	Huber(1).TypeString():       func() nn.CostFunction { return Huber(1) },
	CrossEntropy().TypeString(): func() nn.CostFunction { return CrossEntropy() },
}

// Get returns a new CostFunction of the type given by name, which is its TypeString. Huber is
// given with δ = 1.
func Get(name string) (nn.CostFunction, error) {
	f, ok := list[name]
	if !ok {
		return nil, errors.Errorf("No cost function with name %q (have: %v)", name, Names())
	}

	return f(), nil
}

// Names returns the names of every available CostFunction, sorted.
func Names() []string {
	names := make([]string, 0, len(list))
	for s := range list {
		names = append(names, s)
	}

	sort.Strings(names)
	return names
}
