// Package initializers provides implementations of neuralnet.Initializer, which set the weights of
// the Units in a Network, and the random number generators they draw from.
//
// All randomness comes from one package-level source, which is seeded from the clock at startup.
// Call Seed for reproducible weights.
package initializers

import (
	"math"
	"sync"

	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var (
	defaultMux   sync.RWMutex
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
	}
)

func getDefault(name string) float64 {
	defaultMux.RLock()
	defer defaultMux.RUnlock()
	return defaultValue[name]
}

// SetDefault sets the default values used when creating Initializers and RNGs. The values that
// can be set are: "uniform-lower", "uniform-upper", "normal-mean", "normal-sd", and
// "varscl-factor".
func SetDefault(name string, value float64) error {
	defaultMux.Lock()
	defer defaultMux.Unlock()

	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}
