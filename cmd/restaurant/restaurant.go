package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	nn "github.com/sharnoff/neuralnet"
	"github.com/sharnoff/neuralnet/climanager"
	"github.com/sharnoff/neuralnet/datasets"
	"github.com/sharnoff/neuralnet/hyperparams"
	"github.com/sharnoff/neuralnet/initializers"
)

var (
	learningRate  = flag.Float64("rate", 0.5, "learning rate")
	maxIterations = flag.Int("iterations", 50000, "number of training iterations")
	nHidden       = flag.Int("hidden", 6, "number of hidden units")
	seed          = flag.Uint64("seed", 1, "seed for the initial weights")
	load          = flag.String("load", "", "if set, load the network from this file instead of training it")
	save          = flag.String("save", "", "if set, save the trained network to this file")
)

// errQuit marks the user quitting a prompt
var errQuit = errors.New("quit")

func trainNet() (nn.Network, error) {
	if *load != "" {
		slog.Info("loading network", "path", *load)
		return nn.Load(*load)
	}

	dataset := datasets.Restaurant()
	data, err := nn.Data(dataset)
	if err != nil {
		return nil, err
	}

	initializers.Seed(*seed)
	net := nn.NewMultilayer(datasets.NumConditions, *nHidden, 1).Randomize(initializers.Xavier())

	slog.Info("training network", "iterations", *maxIterations, "hidden", *nHidden)
	err = nn.Train(net, nn.TrainArgs{
		TrainData:    data,
		TestData:     data,
		ShouldTest:   nn.Every(len(dataset) * 1000),
		RunCondition: nn.TrainUntil(*maxIterations),
		IsCorrect:    nn.CorrectRound,
		LearningRate: hyperparams.Constant(*learningRate),
		Update: func(r nn.Result) {
			slog.Info("tested", "iteration", r.Iteration, "cost", r.Cost, "correct", r.Correct)
		},
	})
	if err != nil {
		return nil, err
	}

	if *save != "" {
		if err = nn.Save(net, *save, true); err != nil {
			return nil, err
		}
		slog.Info("saved network", "path", *save)
	}

	return net, nil
}

func queryConditions(sc *bufio.Scanner) (datasets.Conditions, error) {
	var c datasets.Conditions
	w := os.Stdout

	fmt.Fprint(w, "Estimated wait (0: 0-10, 1: 10-30, 2: 30-60, 3: >60 minutes): ")
	wait, quit, err := climanager.QueryInt(sc, w, climanager.Between(0, 3))
	if err != nil || quit {
		return c, quitOr(err)
	}
	c.WaitEstimate = float64(wait) / 3

	fmt.Fprint(w, "Type of restaurant (French, Italian, Thai, Burger): ")
	names := []string{"French", "Italian", "Thai", "Burger"}
	name, quit, err := climanager.QueryChoice(sc, w, names...)
	if err != nil || quit {
		return c, quitOr(err)
	}
	for i, n := range names {
		if n == name {
			c.Type = datasets.Cuisine(i)
		}
	}

	bools := []struct {
		prompt string
		v      *bool
	}{
		{"Are you hungry? (y/n): ", &c.Hungry},
		{"Is there an alternative nearby? (y/n): ", &c.Alternate},
		{"Is there a bar to wait in? (y/n): ", &c.Bar},
		{"Is it raining? (y/n): ", &c.Raining},
		{"Is it Friday or Saturday? (y/n): ", &c.FriSat},
		{"Do you have a reservation? (y/n): ", &c.Reservation},
	}
	for _, q := range bools {
		fmt.Fprint(w, q.prompt)
		if *q.v, quit, err = climanager.QueryTF(sc, w); err != nil || quit {
			return c, quitOr(err)
		}
	}

	fmt.Fprint(w, "How full is it? (0: none, 1: some, 2: full): ")
	patrons, quit, err := climanager.QueryInt(sc, w, climanager.Between(0, 2))
	if err != nil || quit {
		return c, quitOr(err)
	}
	c.Patrons = float64(patrons) / 2

	fmt.Fprint(w, "Price range (1: $, 2: $$, 3: $$$): ")
	price, quit, err := climanager.QueryInt(sc, w, climanager.Between(1, 3))
	if err != nil || quit {
		return c, quitOr(err)
	}
	c.Price = float64(price-1) / 2

	return c, nil
}

func quitOr(err error) error {
	if err != nil {
		return err
	}
	return errQuit
}

func run() error {
	net, err := trainNet()
	if err != nil {
		return err
	}

	for _, e := range datasets.Examples() {
		outs, err := net.Evaluate(e.Inputs())
		if err != nil {
			return err
		}
		fmt.Printf("%-8v wait: %-5v predicted: %.3f\n", e.Type, e.WillWait, outs[0])
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Println("Describe a restaurant visit to get a prediction. Enter 'quit' at any prompt to stop.")
	for {
		c, err := queryConditions(sc)
		if err == errQuit {
			return nil
		} else if err != nil {
			return err
		}

		outs, err := net.Evaluate(c.Inputs())
		if err != nil {
			return err
		}

		if outs[0] >= 0.5 {
			fmt.Printf("Wait for a table (%.3f)\n\n", outs[0])
		} else {
			fmt.Printf("Go somewhere else (%.3f)\n\n", outs[0])
		}
	}
}

func main() {
	flag.Parse()
	nn.ConfigureLogging()

	if err := run(); err != nil {
		slog.Error("restaurant failed", "error", err)
		os.Exit(1)
	}
}
