package neuralnet

// Network is the capability shared by every architecture in this package: mapping inputs to
// outputs and learning from the error of those outputs. *Perceptron and *Multilayer both
// implement it, so training code can be written without knowing which one it is given.
//
// A Network is not safe for concurrent use. Distinct Networks share nothing and may be used in
// parallel.
type Network interface {
	// Evaluate returns the outputs of the Network for the given inputs. The returned slice is a
	// copy and may be modified freely. If the number of inputs is wrong, type SizeMismatchError is
	// returned.
	Evaluate(inputs []float64) ([]float64, error)

	// Train adjusts the weights of the Network, given the inputs, the error for each output
	// (usually target - output), and the learning rate. If the lengths of inputs or errs are
	// wrong, type SizeMismatchError is returned and no weights are changed.
	Train(inputs, errs []float64, rate float64) error
}

// Shaped is implemented by Networks that can report their dimensions. The training harness uses
// it to check data before it reaches the Network.
type Shaped interface {
	InputSize() int
	OutputSize() int
}

// CostFunction measures how far outputs are from their targets. Implementations can be found in
// the subpackage "costfuncs".
type CostFunction interface {
	// TypeString returns the name the CostFunction is registered under, e.g. "mse"
	TypeString() string

	// Cost returns the total cost of the outputs, given the targets. Both slices will always have
	// the same length.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost w.r.t. each output. The training harness uses
	// the negation of these as the errors given to Network.Train.
	Derivs(outs, targets []float64) []float64
}

// HyperParameter is a value that may change with the iteration of training, such as the learning
// rate. Implementations can be found in the subpackage "hyperparams".
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}

// Initializer sets the weights of a single Unit. fanIn is the number of inputs to the Unit's
// layer and fanOut the number of Units in it; ws has length fanIn. Implementations can be found
// in the subpackage "initializers".
type Initializer interface {
	Set(fanIn, fanOut int, ws []float64)
}
