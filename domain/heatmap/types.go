package heatmap

import (
	"gonum.org/v1/gonum/mat"
)

// MissingLabel substitutes an empty or absent label-column value when the
// row label is built.
const MissingLabel = "Unknown"

// Selection names the columns one pipeline run projects out of the table:
// an identifier column, a label column, and the ordered sample columns that
// become the numeric matrix. Immutable for the duration of a run.
type Selection struct {
	IdentifierColumn string
	LabelColumn      string
	SampleColumns    []string
}

// TransformConfig holds the two pipeline toggles. Order of application is
// fixed: log compression first, then row standardization.
type TransformConfig struct {
	Log10       bool
	Standardize bool
}

// RenderConfig carries the rendering hints the core threads through to the
// renderer. It is explicit per-run state, never process-global.
type RenderConfig struct {
	Palette  string
	FontSize int
	Scale    int
}

// FontSize bounds, matching the configuration surface.
const (
	MinFontSize     = 5
	MaxFontSize     = 20
	DefaultFontSize = 10
	DefaultScale    = 2
)

// ClampFontSize forces a font size into the supported range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// Diagnostics reports non-fatal observations from one matrix build. The
// numeric contract is unaffected; these exist so the UI can warn.
type Diagnostics struct {
	// CoercedCells counts cells that could not be parsed as numbers and were
	// defaulted to zero.
	CoercedCells int
	// DuplicateLabels counts rows whose display label collided with an
	// earlier row. Rows are never deduplicated.
	DuplicateLabels int
}

// Matrix is the row-labeled, column-named numeric value handed to rendering.
// RowLabels[i] names row i of Values; Columns[j] names column j. Row order is
// table order, column order is selection order.
type Matrix struct {
	RowLabels []string
	Columns   []string
	Values    *mat.Dense
}

// Rows returns the row count.
func (m *Matrix) Rows() int {
	return len(m.RowLabels)
}

// Cols returns the column count.
func (m *Matrix) Cols() int {
	return len(m.Columns)
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Values.At(i, j)
}

// Clone returns a deep copy sharing nothing with the receiver. Transforms
// clone rather than mutate so a run never changes its input.
func (m *Matrix) Clone() *Matrix {
	labels := make([]string, len(m.RowLabels))
	copy(labels, m.RowLabels)
	cols := make([]string, len(m.Columns))
	copy(cols, m.Columns)
	var values mat.Dense
	values.CloneFrom(m.Values)
	return &Matrix{RowLabels: labels, Columns: cols, Values: &values}
}

// Row copies row i into a fresh slice.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.Cols())
	mat.Row(out, i, m.Values)
	return out
}
