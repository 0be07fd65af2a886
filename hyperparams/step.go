package hyperparams

import (
	"sort"
)

// stepper holds the iterations at which the value changes, in increasing order, and the value from
// each one onwards
type stepper struct {
	starts []int
	values []float64
}

// Step returns a HyperParameter with the value base from iteration 0, until changed by Add.
func Step(base float64) *stepper {
	return &stepper{starts: []int{0}, values: []float64{base}}
}

// Add makes the value from iteration iter onwards be value, returning the HyperParameter. Steps
// may be added in any order; adding one at an existing iteration replaces it.
func (s *stepper) Add(iter int, value float64) *stepper {
	i := sort.SearchInts(s.starts, iter)
	if i < len(s.starts) && s.starts[i] == iter {
		s.values[i] = value
		return s
	}

	s.starts = append(s.starts[:i], append([]int{iter}, s.starts[i:]...)...)
	s.values = append(s.values[:i], append([]float64{value}, s.values[i:]...)...)
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(iter int) float64 {
	// index of the last start <= iter
	i := sort.Search(len(s.starts), func(i int) bool { return s.starts[i] > iter }) - 1
	if i < 0 {
		i = 0
	}

	return s.values[i]
}
