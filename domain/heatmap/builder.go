package heatmap

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

// BuildMatrix projects a validated table into a labeled numeric matrix.
// Row labels are "<label> (<identifier>)" with MissingLabel substituted for
// empty label cells; columns are the sample columns in selection order; every
// cell is coerced to a float with unparseable values defaulting to exactly
// 0.0. Coercion never fails, so past validation the pipeline always produces
// a fully shaped matrix.
func BuildMatrix(t *table.Table, sel Selection) (*Matrix, Diagnostics) {
	rows := t.RowCount()
	cols := len(sel.SampleColumns)

	labels := make([]string, rows)
	columns := make([]string, cols)
	copy(columns, sel.SampleColumns)

	values := mat.NewDense(rows, cols, nil)
	var diag Diagnostics

	seen := make(map[string]bool, rows)
	for i := 0; i < rows; i++ {
		labels[i] = rowLabel(t, i, sel)
		if seen[labels[i]] {
			diag.DuplicateLabels++
		}
		seen[labels[i]] = true

		for j, name := range sel.SampleColumns {
			raw, _ := t.Cell(i, name)
			v, ok := coerceNumeric(raw)
			if !ok {
				diag.CoercedCells++
			}
			values.Set(i, j, v)
		}
	}

	return &Matrix{RowLabels: labels, Columns: columns, Values: values}, diag
}

func rowLabel(t *table.Table, row int, sel Selection) string {
	label, _ := t.Cell(row, sel.LabelColumn)
	label = strings.TrimSpace(label)
	if label == "" {
		label = MissingLabel
	}
	id, _ := t.Cell(row, sel.IdentifierColumn)
	return fmt.Sprintf("%s (%s)", label, strings.TrimSpace(id))
}

// coerceNumeric parses one raw cell. "Not a number" means "no signal": empty,
// missing, and non-numeric text all coerce to 0.0. Comma-bearing text like
// "1,234.5" is non-numeric here, not a thousands-grouped number; guessing a
// value for it would fabricate signal. The bool reports whether the cell
// parsed, so the builder can count defaults.
func coerceNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
