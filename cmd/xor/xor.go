package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	nn "github.com/sharnoff/neuralnet"
	"github.com/sharnoff/neuralnet/costfuncs"
	"github.com/sharnoff/neuralnet/datasets"
	"github.com/sharnoff/neuralnet/hyperparams"
	"github.com/sharnoff/neuralnet/initializers"
)

var (
	learningRate  = flag.Float64("rate", 0.5, "learning rate")
	maxIterations = flag.Int("iterations", 20000, "number of training iterations")
	nHidden       = flag.Int("hidden", 4, "number of hidden units")
	seed          = flag.Uint64("seed", 1, "seed for the initial weights")
	costName      = flag.String("cost", "mse", "cost function (one of: mse, abs, huber, cross-entropy)")
	logCosts      = flag.Bool("log-costs", false, "log every cost at debug level (set NEURALNET_LOG_LEVEL=DEBUG)")

	// where to save/load the network
	path = flag.String("path", "xor save", "file to save the network to")
)

const (
	statusFrequency int = 1000
	testFrequency   int = 5000
)

func format(fs ...float64) (str string) {
	for i := range fs {
		if fs[i] != 0 {
			str += fmt.Sprintf("%v", fs[i])
		}
		str += ", "
	}

	return
}

func train(net nn.Network, dataset [][][]float64, cf nn.CostFunction) error {
	trainData, err := nn.Data(dataset)
	if err != nil {
		return err
	}

	testData, err := nn.Data(dataset)
	if err != nil {
		return err
	}

	// statusCost, statusPercent, testCost, testPercent
	results := make([]float64, 4)
	previousIteration := -1

	update := func(r nn.Result) {
		if r.Iteration > previousIteration && previousIteration >= 0 {
			fmt.Printf("%d, %s\n", previousIteration, format(results...))
			results = make([]float64, len(results))
		}

		if r.IsTest {
			results[2], results[3] = r.Cost, r.Correct
		} else {
			results[0], results[1] = r.Cost, r.Correct
		}

		previousIteration = r.Iteration
	}

	args := nn.TrainArgs{
		TrainData:    trainData,
		TestData:     testData,
		ShouldTest:   nn.Every(testFrequency),
		SendStatus:   nn.Every(statusFrequency),
		RunCondition: nn.TrainUntil(*maxIterations),
		IsCorrect:    nn.CorrectRound,
		CostFunc:     cf,
		LearningRate: hyperparams.Constant(*learningRate),
		Update:       update,
	}

	slog.Info("starting training", "iterations", *maxIterations, "rate", *learningRate)
	fmt.Println("Iteration, Status Cost, Status Percent, Test Cost, Test Percent")
	if err := nn.Train(net, args); err != nil {
		return err
	}

	fmt.Printf("%d, %s\n", previousIteration, format(results...))
	slog.Info("done training")
	return nil
}

func test(net nn.Network, dataset [][][]float64, cf nn.CostFunction) error {
	testData, err := nn.Data(dataset)
	if err != nil {
		return err
	}

	cost, correct, err := nn.Test(net, testData, cf, nn.CorrectRound)
	if err != nil {
		return err
	}

	slog.Info("tested", "cost", cost, "correct", correct)
	for _, d := range dataset {
		outs, err := net.Evaluate(d[0])
		if err != nil {
			return err
		}
		fmt.Printf("%v → %v (want %v)\n", d[0][:2], outs, d[1])
	}

	return nil
}

func run() error {
	cf, err := costfuncs.Get(*costName)
	if err != nil {
		return err
	} else if *logCosts {
		cf = costfuncs.Logged(cf, nil)
	}

	dataset := datasets.XOR()

	initializers.Seed(*seed)
	net := nn.NewMultilayer(len(dataset[0][0]), *nHidden, 1).Randomize(initializers.Xavier())

	if err = train(net, dataset, cf); err != nil {
		return err
	} else if err = test(net, dataset, cf); err != nil {
		return err
	}

	slog.Info("saving", "path", *path)
	if err = nn.Save(net, *path, true); err != nil {
		return err
	}

	slog.Info("loading", "path", *path)
	loaded, err := nn.Load(*path)
	if err != nil {
		return err
	}

	if err = train(loaded, dataset, cf); err != nil {
		return err
	}
	return test(loaded, dataset, cf)
}

func main() {
	flag.Parse()
	nn.ConfigureLogging()

	if err := run(); err != nil {
		slog.Error("xor failed", "error", err)
		os.Exit(1)
	}
}
