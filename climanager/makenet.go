package climanager

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	nn "github.com/sharnoff/neuralnet"
	"github.com/sharnoff/neuralnet/initializers"
)

// ErrAborted is returned by MakeNet when the user quits before the Network is finished
var ErrAborted = errors.New("aborted")

var knownInits = map[string]func() nn.Initializer{
	"ones":   func() nn.Initializer { return initializers.Constant(1) },
	"xavier": func() nn.Initializer { return initializers.Xavier() },
	"he":     func() nn.Initializer { return initializers.He() },
	"lecun":  func() nn.Initializer { return initializers.LeCun() },
}

// MakeNet queries the given input (usually a command line) in order to create a Network.
//
// If 'w' is nil, MakeNet will not output instructions.
func MakeNet(r io.Reader, w io.Writer) (nn.Kinded, error) {
	if w == nil {
		w = io.Discard
	}

	sc := bufio.NewScanner(r)
	positive := func(n int) string {
		if n < 1 {
			return "Size should be ≥ 1. Try again: "
		}
		return ""
	}

	fmt.Fprintf(w, "Welcome to the Network constructor. Enter 'quit' at any point to abort.\n")
	fmt.Fprintf(w, "Which kind of network? (%s, %s): ", nn.KindPerceptron, nn.KindMultilayer)
	kind, quit, err := QueryChoice(sc, w, nn.KindPerceptron, nn.KindMultilayer)
	if err != nil || quit {
		return nil, aborted(err)
	}

	fmt.Fprint(w, "Number of inputs: ")
	nInputs, quit, err := QueryInt(sc, w, positive)
	if err != nil || quit {
		return nil, aborted(err)
	}

	var nHidden int
	if kind == nn.KindMultilayer {
		fmt.Fprint(w, "Number of hidden units: ")
		if nHidden, quit, err = QueryInt(sc, w, positive); err != nil || quit {
			return nil, aborted(err)
		}
	}

	fmt.Fprint(w, "Number of outputs: ")
	nOutputs, quit, err := QueryInt(sc, w, positive)
	if err != nil || quit {
		return nil, aborted(err)
	}

	fmt.Fprint(w, "Initial weights (ones, xavier, he, lecun): ")
	initName, quit, err := QueryChoice(sc, w, "ones", "xavier", "he", "lecun")
	if err != nil || quit {
		return nil, aborted(err)
	}
	initializer := knownInits[initName]()

	if kind == nn.KindPerceptron {
		p := nn.NewPerceptron(nInputs, nOutputs).Randomize(initializer)

		fmt.Fprint(w, "Output activation (sigmoid, step, sign): ")
		actName, quit, err := QueryChoice(sc, w, "sigmoid", "step", "sign")
		if err != nil || quit {
			return nil, aborted(err)
		}

		act, err := nn.ParseActivation(actName)
		if err != nil {
			return nil, errors.Wrapf(err, "Previously known activation became unknown")
		}

		return p.SetActivation(act), nil
	}

	return nn.NewMultilayer(nInputs, nHidden, nOutputs).Randomize(initializer), nil
}

func aborted(err error) error {
	if err != nil {
		return errors.Wrapf(err, "Failed to make network")
	}
	return ErrAborted
}
