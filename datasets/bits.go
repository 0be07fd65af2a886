// Package datasets supplies inputs and targets for training and testing Networks: randomized bit
// vectors, the small boolean functions, and the restaurant-waiting examples.
//
// Inputs that end in a constant -1 carry a bias: the weight for that input acts as the threshold
// of the Unit, since Units in neuralnet have no separate bias term.
package datasets

import (
	"github.com/pkg/errors"
	nn "github.com/sharnoff/neuralnet"
	"golang.org/x/exp/rand"
)

// Bias is the value of the constant input appended to every input vector in this package.
const Bias float64 = -1

// Bits returns n values, each 0 or 1 with equal probability, drawn from r.
func Bits(r *rand.Rand, n int) []float64 {
	bs := make([]float64, n)

	var word uint64
	for i := range bs {
		if i%64 == 0 {
			word = r.Uint64()
		}

		bs[i] = float64(word & 1)
		word >>= 1
	}

	return bs
}

// sampleRand returns a generator that depends only on seed and index, so that a sample can be
// regenerated without replaying the ones before it.
func sampleRand(seed uint64, index int) *rand.Rand {
	// splitmix64 finalizer, so that neighbouring indexes give unrelated seeds
	z := seed + uint64(index)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return rand.New(rand.NewSource(z))
}

type majority struct {
	nBits, testSize int
	seed            uint64
}

// Majority returns a DataSupplier for the majority function: each Datum has nBits random bits
// followed by Bias, and a single target that is 1 if at least (nBits+1)/2 of the bits are set, else
// 0. It is linearly separable, so a Perceptron can learn it.
//
// The Datum for each iteration depends only on seed and the iteration. When testing, testSize
// samples are used.
func Majority(nBits, testSize int, seed uint64) (nn.DataSupplier, error) {
	if nBits < 1 {
		return nil, errors.Errorf("Can't make majority dataset, number of bits must be >= 1 (%d)", nBits)
	} else if testSize < 0 {
		return nil, errors.Errorf("Can't make majority dataset, test size must be >= 0 (%d)", testSize)
	}

	return majority{nBits, testSize, seed}, nil
}

// MajorityTarget returns the target of the majority function for the given bits: 1 if at least
// (len(bits)+1)/2 of them are 1.
func MajorityTarget(bits []float64) float64 {
	var count int
	for _, b := range bits {
		if b == 1 {
			count++
		}
	}

	if count >= (len(bits)+1)/2 {
		return 1
	}

	return 0
}

func (m majority) Get(iter int) (nn.Datum, error) {
	bits := Bits(sampleRand(m.seed, iter), m.nBits)
	target := MajorityTarget(bits)

	return nn.Datum{
		Inputs:  append(bits, Bias),
		Outputs: []float64{target},
	}, nil
}

func (m majority) DoneTesting(iter int) bool {
	return iter >= m.testSize
}
