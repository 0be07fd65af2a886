package costfuncs

import (
	"log/slog"

	nn "github.com/sharnoff/neuralnet"
)

type logged struct {
	nn.CostFunction
	logger *slog.Logger
}

// Logged wraps a CostFunction so that every call to Cost logs the outputs, targets and cost at
// Debug level. If logger is nil, slog.Default() is used.
func Logged(cf nn.CostFunction, logger *slog.Logger) nn.CostFunction {
	if logger == nil {
		logger = slog.Default()
	}

	return logged{cf, logger}
}

func (l logged) Cost(outs, targets []float64) float64 {
	c := l.CostFunction.Cost(outs, targets)
	l.logger.Debug("cost", "func", l.TypeString(), "outputs", outs, "targets", targets, "cost", c)
	return c
}
