package heatmap

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Transform applies the configured transforms to a matrix and returns a new
// matrix with identical shape and labels. Step order is fixed: log
// compression, then row standardization on whatever the log step produced.
// The input matrix is never mutated, so re-running the pipeline on the same
// inputs is bit-identical.
func Transform(m *Matrix, cfg TransformConfig) *Matrix {
	out := m.Clone()
	if cfg.Log10 {
		logCompress(out)
	}
	if cfg.Standardize {
		standardizeRows(out)
	}
	return out
}

// logCompress maps every cell v to log10(v+1). Intensities are expected to
// be non-negative; v < -1 yields NaN, which flows through to rendering
// rather than crashing the run (NaN cells draw as missing).
func logCompress(m *Matrix) {
	rows, cols := m.Values.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Values.Set(i, j, math.Log10(m.Values.At(i, j)+1))
		}
	}
}

// standardizeRows z-scores each row independently: subtract the row mean,
// divide by the sample standard deviation. A zero standard deviation is
// substituted with 1.0 so a constant row becomes all zeros instead of
// NaN/Inf.
func standardizeRows(m *Matrix) {
	rows, cols := m.Values.Dims()
	for i := 0; i < rows; i++ {
		row := m.Row(i)
		mean, _ := stats.Mean(row)
		std, _ := stats.StandardDeviationSample(row)
		if std == 0 || math.IsNaN(std) {
			// Constant rows (and single-column rows) center to zero
			// rather than dividing into NaN.
			std = 1
		}
		for j := 0; j < cols; j++ {
			m.Values.Set(i, j, (row[j]-mean)/std)
		}
	}
}
