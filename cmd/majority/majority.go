package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	nn "github.com/sharnoff/neuralnet"
	"github.com/sharnoff/neuralnet/datasets"
	"github.com/sharnoff/neuralnet/hyperparams"
	"github.com/sharnoff/neuralnet/utils"
)

var (
	nBits         = flag.Int("bits", 11, "number of input bits")
	learningRate  = flag.Float64("rate", 0.1, "learning rate")
	maxIterations = flag.Int("iterations", 2000, "number of training iterations")
	testSize      = flag.Int("test", 500, "number of test samples")
	seed          = flag.Uint64("seed", 1, "seed for the dataset")
	activation    = flag.String("activation", "sigmoid", "output activation (sigmoid, step or sign)")
	sweep         = flag.Bool("sweep", false, "also train one perceptron per rate in [0.01, 1] and compare them")
	path          = flag.String("path", "", "if set, file to save the trained perceptron to")
)

type outcome struct {
	cost, correct float64
	err           error
}

// trainOne trains a new Perceptron and returns it with its results on the test data
func trainOne(rate float64, act nn.Activation) (*nn.Perceptron, outcome) {
	trainData, err := datasets.Majority(*nBits, 0, *seed)
	if err != nil {
		return nil, outcome{err: err}
	}

	// test samples come from a different seed, so that they are not the training samples
	testData, err := datasets.Majority(*nBits, *testSize, *seed+1)
	if err != nil {
		return nil, outcome{err: err}
	}

	p := nn.NewPerceptron(*nBits+1, 1).SetActivation(act)

	err = nn.Train(p, nn.TrainArgs{
		TrainData:    trainData,
		RunCondition: nn.TrainUntil(*maxIterations),
		LearningRate: hyperparams.Constant(rate),
	})
	if err != nil {
		return nil, outcome{err: errors.Wrapf(err, "Training with rate %v failed", rate)}
	}

	cost, correct, err := nn.Test(p, testData, nil, nn.CorrectRound)
	return p, outcome{cost, correct, err}
}

func run() error {
	act, err := nn.ParseActivation(*activation)
	if err != nil {
		return err
	}

	p, res := trainOne(*learningRate, act)
	if res.err != nil {
		return res.err
	}

	slog.Info("trained perceptron", "bits", *nBits, "rate", *learningRate, "cost", res.cost, "correct", res.correct)
	fmt.Printf("weights: %v\n", p.Unit(0).Weights())

	if *path != "" {
		if err = nn.Save(p, *path, true); err != nil {
			return err
		}
		slog.Info("saved perceptron", "path", *path)
	}

	if !*sweep {
		return nil
	}

	rates := make([]float64, 100)
	results := make([]outcome, len(rates))
	for i := range rates {
		rates[i] = float64(i+1) / 100
	}

	// each index has its own Perceptron, so they can be trained in parallel
	utils.MultiThread(0, len(rates), func(i int) {
		_, results[i] = trainOne(rates[i], act)
	}, 4, 1)

	fmt.Println("Rate, Test Cost, Test Percent")
	for i, r := range results {
		if r.err != nil {
			return r.err
		}
		fmt.Printf("%v, %v, %v\n", rates[i], r.cost, r.correct)
	}

	return nil
}

func main() {
	flag.Parse()
	nn.ConfigureLogging()

	if err := run(); err != nil {
		slog.Error("majority failed", "error", err)
		os.Exit(1)
	}
}
