package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	nn "github.com/sharnoff/neuralnet"
	"github.com/sharnoff/neuralnet/climanager"
	"github.com/sharnoff/neuralnet/costfuncs"
	"github.com/sharnoff/neuralnet/server"
)

var (
	addr     = flag.String("addr", "localhost:8080", "address to listen on")
	load     = flag.String("load", "", "file to load the network from")
	savePath = flag.String("save", "", "file that POST /save writes to; saving is disabled if empty")
	costName = flag.String("cost", "mse", "cost function for POST /train with targets")
	create   = flag.Bool("new", false, "make a new network interactively instead of loading one")
)

func getNet() (nn.Kinded, error) {
	if *create {
		return climanager.MakeNet(os.Stdin, os.Stdout)
	} else if *load == "" {
		return nil, errors.Errorf("One of -load or -new must be given")
	}

	net, err := nn.Load(*load)
	if err != nil {
		return nil, err
	}

	k, ok := net.(nn.Kinded)
	if !ok {
		return nil, errors.Errorf("Network loaded from %q can't be encoded", *load)
	}

	return k, nil
}

func run() error {
	net, err := getNet()
	if err != nil {
		return err
	}

	cf, err := costfuncs.Get(*costName)
	if err != nil {
		return err
	}

	return server.New(net, *savePath, slog.Default()).SetCostFunc(cf).Run(*addr)
}

func main() {
	flag.Parse()
	nn.ConfigureLogging()

	if err := run(); err != nil {
		slog.Error("nnserve failed", "error", err)
		os.Exit(1)
	}
}
