package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/metrics"
	"github.com/born-ml/mlp/internal/nn"
)

// wavesHidden is the hidden layer stack of the waves model.
var wavesHidden = []int{50, 30, 10}

func runWaves(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("waves", flag.ContinueOnError)
	fs.SetOutput(out)
	samples := fs.Int("samples", 1000, "Number of synthetic samples")
	dim := fs.Int("dim", 10, "Input dimension")
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	report := fs.Int("report", 100, "Print the error every N epochs (0 = never)")
	testSize := fs.Int("test", 10, "Number of leading samples shown individually")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := newRand(*seed)

	fmt.Fprintf(out, "Generating synthetic dataset: %d samples, %d features\n", *samples, *dim)
	x, y, err := dataset.Waves(*samples, *dim, rng)
	if err != nil {
		return err
	}

	net, err := buildWavesNetwork(*dim, wavesHidden, rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Architecture: %d -> %d -> %d -> %d -> 1 (%d layers)\n",
		*dim, wavesHidden[0], wavesHidden[1], wavesHidden[2], net.Len())
	fmt.Fprintf(out, "Epochs: %d, learning rate: %g\n\n", *epochs, *lr)

	var opts []nn.TrainOption
	if *report > 0 {
		opts = append(opts, nn.WithReportEvery(*report), nn.WithObserver(progress(out, *epochs)))
	}

	start := time.Now()
	if _, err := net.Train(x, y, *epochs, *lr, opts...); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "\nTraining completed in %s\n", elapsed.Round(time.Millisecond))

	xTest, yTest := dataset.Head(x, *testSize), dataset.Head(y, *testSize)
	predTest, err := net.Predict(xTest)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	fmt.Fprintf(out, "\n--- Test Results (first %d samples) ---\n", yTest.Rows())
	printSamples(out, xTest, yTest, predTest, metrics.DefaultThreshold)

	r, err := metrics.Evaluate(predTest, yTest, metrics.DefaultThreshold)
	if err != nil {
		return err
	}
	printReport(out, "FINAL PRECISION (test subset)", r)

	pred, err := net.Predict(x)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	r, err = metrics.Evaluate(pred, y, metrics.DefaultThreshold)
	if err != nil {
		return err
	}
	printReport(out, "FINAL PRECISION (full dataset)", r)
	return nil
}

// buildWavesNetwork stacks Dense+Tanh blocks for every hidden width and ends
// with a single-unit Dense+Sigmoid block.
func buildWavesNetwork(dim int, hidden []int, rng *rand.Rand) (*nn.Network, error) {
	net := nn.NewNetwork()
	in := dim
	widths := append(append([]int(nil), hidden...), 1)
	for i, width := range widths {
		layer, err := nn.NewDense(in, width, nn.WithRand(rng))
		if err != nil {
			return nil, err
		}
		net.Add(layer)
		if i == len(widths)-1 {
			net.Add(nn.NewSigmoid())
		} else {
			net.Add(nn.NewTanh())
		}
		in = width
	}
	return net, nil
}
