package neuralnet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectRound returns whether or not every output rounds to its target: to 0 if < 0.5, else 1.
// It is meant for sigmoid outputs and binary targets. Assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		var r float64
		if outs[i] >= 0.5 {
			r = 1
		}

		if r != targets[i] {
			return false
		}
	}

	return true
}

// CorrectWithin returns a function that satisfies TrainArgs.IsCorrect, accepting outputs that are
// each within tolerance of their target.
func CorrectWithin(tolerance float64) func([]float64, []float64) bool {
	return func(outs, targets []float64) bool {
		for i := range outs {
			if math.Abs(outs[i]-targets[i]) > tolerance {
				return false
			}
		}

		return true
	}
}

// CorrectHighest just returns whether or not the largest value in each is at the same index
func CorrectHighest(outs, targets []float64) bool {
	if len(outs) == 0 {
		return len(targets) == 0
	}

	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping after
// maxIterations.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus or TrainArgs.ShouldTest
// 'frequency' is in units of iterations. If frequency is less than 1, the function always returns
// false.
func Every(frequency int) func(int) bool {
	if frequency < 1 {
		return func(int) bool { return false }
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
