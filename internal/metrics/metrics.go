// Package metrics scores binary predictions against labels.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/mlp/internal/matrix"
)

// DefaultThreshold separates class 0 from class 1.
const DefaultThreshold = 0.5

// Report summarizes binary classification quality over column 0.
type Report struct {
	Correct int
	Total   int
	// Accuracy is the percentage of samples whose thresholded prediction
	// matches the thresholded label.
	Accuracy float64
	// MAE is the mean absolute error between raw predictions and labels.
	MAE float64
	// NumericalPrecision is (1 - MAE)·100.
	NumericalPrecision float64
}

// Evaluate compares the first column of pred with the first column of target.
//
// A value is class 1 when it is >= threshold. Returns ErrShapeMismatch when
// the row counts differ or either matrix has no columns.
func Evaluate(pred, target *matrix.Matrix, threshold float64) (Report, error) {
	if pred.Rows() != target.Rows() || pred.Cols() == 0 || target.Cols() == 0 {
		return Report{}, fmt.Errorf("metrics.Evaluate: %v vs %v: %w",
			pred.Shape(), target.Shape(), matrix.ErrShapeMismatch)
	}

	n := pred.Rows()
	report := Report{Total: n}
	if n == 0 {
		return report, nil
	}

	errs := make([]float64, n)
	for i := 0; i < n; i++ {
		p, _ := pred.At(i, 0)
		want, _ := target.At(i, 0)
		errs[i] = math.Abs(want - p)
		if (p >= threshold) == (want >= threshold) {
			report.Correct++
		}
	}

	report.Accuracy = float64(report.Correct) / float64(n) * 100
	report.MAE = stat.Mean(errs, nil)
	report.NumericalPrecision = (1 - report.MAE) * 100
	return report, nil
}

func (r Report) String() string {
	return fmt.Sprintf("accuracy=%.2f%% (%d/%d) mae=%.6f precision=%.2f%%",
		r.Accuracy, r.Correct, r.Total, r.MAE, r.NumericalPrecision)
}
