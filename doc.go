// Package neuralnet provides two small supervised-learning networks built from a single kind of
// neuron: a single-layer Perceptron and a Multilayer feed-forward network with one hidden layer,
// trained by back-propagation.
//
// # Creating Networks
//
// Both architectures can be created with every weight set to 1, from a flat slice of weights, or
// randomized with an Initializer from the subpackage "initializers":
//
//	p := neuralnet.NewPerceptron(nInputs, nOutputs)
//	m := neuralnet.NewMultilayer(nInputs, nHidden, nOutputs).Randomize(initializers.Xavier())
//
// For brevity, neuralnet is sometimes abbreviated 'nn'.
//
// Units use the sigmoid activation. The output Units of a Perceptron can instead use a hard
// threshold (Step or Sign) with SetActivation; the Multilayer needs derivatives, so it is always
// sigmoid.
//
// # Evaluating and Training
//
// Both types implement Network:
//
//	outs, err := net.Evaluate(inputs)
//	err = net.Train(inputs, errs, rate)
//
// errs holds one error per output, usually target - output. A Multilayer trains from the state
// left by its last Evaluate, so each Train must follow an Evaluate on the same inputs. Networks
// are not safe for concurrent use; separate Networks are fully independent.
//
// For longer runs, Train (the function) drives a Network from a DataSupplier:
//
//	err := nn.Train(net, nn.TrainArgs{
//		TrainData:    data,
//		RunCondition: nn.TrainUntil(10000),
//		LearningRate: hyperparams.Constant(0.5),
//		CostFunc:     costfuncs.MSE(),
//	})
//
// # Saving and Loading
//
// Every Network in this package has a plain-text encoding. The simplest way to use it is:
//
//	func Save(net Kinded, path string, overwrite bool) error
//	func Load(path string) (Network, error)
//
// Encode and Decode do the same on any io.Writer and io.Reader.
package neuralnet
