package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/metrics"
	"github.com/born-ml/mlp/internal/nn"
)

func runXOR(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(out)
	epochs := fs.Int("epochs", 10000, "Number of training epochs")
	lr := fs.Float64("lr", 0.1, "Learning rate")
	hidden := fs.Int("hidden", 3, "Hidden layer width")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	report := fs.Int("report", 100, "Print the error every N epochs (0 = never)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := newRand(*seed)
	x, y := dataset.XOR()

	first, err := nn.NewDense(2, *hidden, nn.WithRand(rng))
	if err != nil {
		return err
	}
	second, err := nn.NewDense(*hidden, 1, nn.WithRand(rng))
	if err != nil {
		return err
	}
	net := nn.NewNetwork(first, nn.NewTanh(), second, nn.NewTanh())

	fmt.Fprintf(out, "XOR: 2 -> %d -> 1 (Tanh), epochs=%d, lr=%g\n", *hidden, *epochs, *lr)

	var opts []nn.TrainOption
	if *report > 0 {
		opts = append(opts, nn.WithReportEvery(*report), nn.WithObserver(progress(out, *epochs)))
	}
	if _, err := net.Train(x, y, *epochs, *lr, opts...); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	pred, err := net.Predict(x)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	printMatrix(out, "Predictions", pred)

	fmt.Fprintln(out, "\n--- Precision Analysis ---")
	printSamples(out, x, y, pred, metrics.DefaultThreshold)

	r, err := metrics.Evaluate(pred, y, metrics.DefaultThreshold)
	if err != nil {
		return err
	}
	printReport(out, "FINAL PRECISION", r)
	return nil
}
