package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/metrics"
	"github.com/born-ml/mlp/internal/nn"
)

// newRand returns a generator for seed, or a clock-seeded one when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for data and weights (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// progress prints the training error every reported epoch.
func progress(out io.Writer, epochs int) nn.Observer {
	return func(epoch int, loss float64) {
		fmt.Fprintf(out, "Epoch %d/%d error=%g\n", epoch+1, epochs, loss)
	}
}

func printMatrix(out io.Writer, title string, m *matrix.Matrix) {
	fmt.Fprintf(out, "\n%s:\n", title)
	g := m.ToGonum()
	if g == nil {
		fmt.Fprintln(out, "  (empty)")
		return
	}
	fmt.Fprintf(out, "  %v\n", mat.Formatted(g, mat.Prefix("  "), mat.Squeeze()))
}

// printSamples lists expected vs predicted values for every row of column 0.
func printSamples(out io.Writer, x, y, pred *matrix.Matrix, threshold float64) {
	for i := 0; i < y.Rows(); i++ {
		features, _ := x.Row(i)
		want, _ := y.At(i, 0)
		got, _ := pred.At(i, 0)

		mark := "✗"
		if (got >= threshold) == (want >= threshold) {
			mark = "✓"
		}
		if len(features) <= 4 {
			fmt.Fprintf(out, "Input %v: Expected=%g, Predicted=%.6f, Error=%.6f [%s]\n",
				features, want, got, math.Abs(want-got), mark)
		} else {
			fmt.Fprintf(out, "Sample %d: Expected=%g, Predicted=%.6f, Error=%.6f [%s]\n",
				i+1, want, got, math.Abs(want-got), mark)
		}
	}
}

func printReport(out io.Writer, title string, r metrics.Report) {
	fmt.Fprintf(out, "\n=== %s ===\n", title)
	fmt.Fprintf(out, "Binary Classification Accuracy: %.2f%% (%d/%d correct)\n", r.Accuracy, r.Correct, r.Total)
	fmt.Fprintf(out, "Mean Absolute Error (MAE): %.6f\n", r.MAE)
	fmt.Fprintf(out, "Numerical Precision: %.2f%%\n", r.NumericalPrecision)
}
