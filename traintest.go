package neuralnet

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send training samples to a Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the
	// network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the Network, allowing
// it to be used for training or testing. Networks that don't implement Shaped always fit; their
// own checks will catch any mismatch.
func (d Datum) Fits(net Network) bool {
	s, ok := net.(Shaped)
	if !ok {
		return true
	}

	return len(d.Inputs) == s.InputSize() && len(d.Outputs) == s.OutputSize()
}

// DataSupplier is the primary method of providing datasets to a Network, either for training or
// testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)

	// DoneTesting indicates whether or not the testing process has finished, given the number of
	// samples tested so far. This will only be called if the DataSupplier is actually used for
	// providing testing data.
	DoneTesting(int) bool
}

// Result is a wrapper for sending back the progress of the training or testing
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Average cost, from the CostFunction in TrainArgs
	Cost float64

	// The fraction correct, as per IsCorrect from TrainArgs
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

// TrainArgs holds the arguments to Train. Only TrainData, RunCondition and LearningRate are
// required.
type TrainArgs struct {
	TrainData DataSupplier

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil
	TestData DataSupplier

	// ShouldTest indicates whether or not testing should be done before the current iteration.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information about the status of
	// the training since the last time 'true' was returned. SendStatus can be left nil to
	// represent an unconditional false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine if training should
	// continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given the target
	// outputs. In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// CostFunc both measures the outputs and gives the errors the Network is trained with: the
	// negation of its derivatives. If nil, SquaredError is used.
	CostFunc CostFunction

	// LearningRate gives the learning rate at each iteration.
	LearningRate HyperParameter

	// Update is how testing and status updates are returned. If both ShouldTest and SendStatus
	// are nil, then Update can also be left nil.
	Update func(Result)

	// Logger receives status and test results at Debug level. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Train trains the Network on one Datum per iteration, until args.RunCondition returns false.
// Each iteration evaluates the Network on the inputs and then trains it with the errors given by
// the cost function and the learning rate for that iteration.
func Train(net Network, args TrainArgs) error {
	// handle error cases and set defaults
	{
		if net == nil {
			return NilArgError{"Network"}
		}

		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}

			args.ShouldTest = func(i int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}

		if args.CostFunc == nil {
			args.CostFunc = SquaredError()
		}

		if args.LearningRate == nil {
			return errors.Errorf("LearningRate is nil")
		}

		if args.Logger == nil {
			args.Logger = slog.Default()
		}
	}

	var statusCost, statusCorrect float64
	var statusSize int

	for iter := 0; ; iter++ {
		if args.SendStatus(iter) && iter != 0 && statusSize != 0 {
			r := Result{
				Iteration: iter,
				Cost:      statusCost / float64(statusSize),
				Correct:   statusCorrect / float64(statusSize),
				IsTest:    false,
			}

			args.Logger.Debug("training status", "iteration", r.Iteration, "cost", r.Cost, "correct", r.Correct)
			args.Update(r)

			statusCost, statusCorrect = 0, 0
			statusSize = 0
		}

		if args.ShouldTest(iter) {
			cost, correct, err := Test(net, args.TestData, args.CostFunc, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed", iter)
			}

			r := Result{
				Iteration: iter,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			}

			args.Logger.Debug("test result", "iteration", r.Iteration, "cost", r.Cost, "correct", r.Correct)
			args.Update(r)
		}

		if !args.RunCondition(iter) {
			break
		}

		d, err := args.TrainData.Get(iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d", iter)
		} else if !d.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", iter)
		}

		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			return errors.Wrapf(err, "Failed to get Network outputs on iteration %d", iter)
		} else if len(outs) != len(d.Outputs) {
			return errors.Wrapf(SizeMismatchError{len(outs), len(d.Outputs), "targets"}, "Bad training data on iteration %d", iter)
		}

		statusCost += args.CostFunc.Cost(outs, d.Outputs)
		if args.IsCorrect(outs, d.Outputs) {
			statusCorrect += 1.0
		}
		statusSize++

		errs := args.CostFunc.Derivs(outs, d.Outputs)
		for i := range errs {
			errs[i] = -errs[i]
		}

		if err = net.Train(d.Inputs, errs, args.LearningRate.Value(iter)); err != nil {
			return errors.Wrapf(err, "Failed to train Network on iteration %d", iter)
		}
	}

	return nil
}

// Test evaluates the Network on data until data.DoneTesting returns true, returning the average
// cost and the fraction of outputs that were correct. If cf is nil, SquaredError is used; if
// isCorrect is nil, no outputs are counted as correct.
func Test(net Network, data DataSupplier, cf CostFunction, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if net == nil {
		return 0, 0, NilArgError{"Network"}
	} else if data == nil {
		return 0, 0, NilArgError{"DataSupplier"}
	}

	if cf == nil {
		cf = SquaredError()
	}

	var avgCost, avgCorrect float64
	var testSize int

	for ; !data.DoneTesting(testSize); testSize++ {
		d, err := data.Get(testSize)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d", testSize)
		} else if !d.Fits(net) {
			return 0, 0, errors.Errorf("Test sample %d does not fit Network dimensions", testSize)
		}

		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get Network outputs with test sample %d", testSize)
		} else if len(outs) != len(d.Outputs) {
			return 0, 0, errors.Wrapf(SizeMismatchError{len(outs), len(d.Outputs), "targets"}, "Bad test sample %d", testSize)
		}

		avgCost += cf.Cost(outs, d.Outputs)
		if isCorrect != nil && isCorrect(outs, d.Outputs) {
			avgCorrect += 1
		}
	}

	if testSize != 0 {
		avgCost /= float64(testSize)
		avgCorrect /= float64(testSize)
	}

	return avgCost, avgCorrect, nil
}

type internalSupplier struct {
	get         func(int) (Datum, error)
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

func (s internalSupplier) DoneTesting(iter int) bool {
	return s.doneTesting(iter)
}

// Data converts a 3D dataset of float64 to a DataSupplier, which can be used for training or
// testing. dataset indexing is: [data index][inputs, outputs][values]
//
// When training, the data is cycled through in order. When testing, each Datum is used once.
//
// N.B.: Data does not check if the data fit a certain network; that will be done during
// training/testing
func Data(dataset [][][]float64) (DataSupplier, error) {
	d := dataset
	if len(d) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	}

	// check we won't get indexes out of bounds
	for i := range d {
		if len(d[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}
	}

	get := func(iter int) (Datum, error) {
		i := iter % len(d)
		return Datum{Inputs: d[i][0], Outputs: d[i][1]}, nil
	}

	doneTesting := func(iter int) bool {
		return iter >= len(d)
	}

	return internalSupplier{get, doneTesting}, nil
}
