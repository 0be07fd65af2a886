package neuralnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrNotEvaluated is returned by *Multilayer.Train if there has been no call to Evaluate since
	// the network was constructed or last trained. The cached gradients are undefined until then.
	ErrNotEvaluated = Error{"Network has not been evaluated since it was created or last trained"}

	// ErrNoDerivative is returned when a derivative is requested from an activation function that
	// does not have one (Step or Sign).
	ErrNoDerivative = Error{"Activation function has no derivative"}

	// ErrFormat marks a malformed text encoding. It is always wrapped with the location of the
	// problem; use errors.Cause to compare.
	ErrFormat = Error{"Malformed network encoding"}

	// ErrNegativeSize is the cause of the error given when a Network is constructed with a
	// negative number of inputs, hidden Units, or outputs.
	ErrNegativeSize = Error{"Size of network can't be negative"}

	ErrUnknownKind   = Error{"Kind of network is not registered"}
	ErrRegisterTwice = Error{"Kind of network is already registered"}
)

// SizeMismatchError documents a precondition violation: a vector given to a Unit or a Network
// whose length differs from the one required.
type SizeMismatchError struct {
	Expected, Got int

	// What names the mismatched vector, e.g. "inputs" or "errors"
	What string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.What, err.Expected, err.Got)
}

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

func checkSize(what string, expected, got int) error {
	if expected != got {
		return SizeMismatchError{expected, got, what}
	}

	return nil
}

// checkSizes returns an error with cause ErrNegativeSize if any of the named sizes are negative.
// names and sizes are paired by index.
func checkSizes(names []string, sizes ...int) error {
	for i, n := range sizes {
		if n < 0 {
			return errors.Wrapf(ErrNegativeSize, "Bad number of %s (%d)", names[i], n)
		}
	}

	return nil
}
