package heatmap

import (
	"testing"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

func TestBuildMatrix_Shape(t *testing.T) {
	tbl := testTable(t)
	sel := Selection{
		IdentifierColumn: "ID",
		LabelColumn:      "Name",
		SampleColumns:    []string{"S2", "S1"},
	}

	m, _ := BuildMatrix(tbl, sel)

	if m.Rows() != tbl.RowCount() {
		t.Errorf("row count = %d, want %d", m.Rows(), tbl.RowCount())
	}
	if m.Cols() != 2 {
		t.Errorf("col count = %d, want 2", m.Cols())
	}
	// Columns follow selection order, not table order.
	if m.Columns[0] != "S2" || m.Columns[1] != "S1" {
		t.Errorf("columns = %v, want [S2 S1]", m.Columns)
	}
	if m.At(0, 0) != 20 || m.At(0, 1) != 10 {
		t.Errorf("row 0 = [%v %v], want [20 10]", m.At(0, 0), m.At(0, 1))
	}
}

func TestBuildMatrix_LabelFormat(t *testing.T) {
	tbl := testTable(t)
	sel := Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1"}}

	m, _ := BuildMatrix(tbl, sel)

	if m.RowLabels[0] != "Glucose (F1)" {
		t.Errorf("label = %q, want %q", m.RowLabels[0], "Glucose (F1)")
	}
}

func TestBuildMatrix_MissingLabelFallsBackToUnknown(t *testing.T) {
	tbl, err := table.New(
		[]string{"ID", "Name", "S1"},
		[]table.RowData{{"ID": "F001", "S1": "3"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	sel := Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1"}}

	m, _ := BuildMatrix(tbl, sel)

	if m.RowLabels[0] != "Unknown (F001)" {
		t.Errorf("label = %q, want %q", m.RowLabels[0], "Unknown (F001)")
	}
}

func TestBuildMatrix_CoercionDefaultsToZero(t *testing.T) {
	tbl, err := table.New(
		[]string{"ID", "Name", "S1", "S2", "S3", "S4", "S5"},
		[]table.RowData{{
			"ID": "F1", "Name": "X",
			"S1": "",        // empty
			"S2": "n/a",     // non-numeric text
			"S4": "1,234.5", // comma-bearing text, never reinterpreted
			"S5": "10,20",   // ditto: must not become 1020
			// S3 missing entirely
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	sel := Selection{
		IdentifierColumn: "ID",
		LabelColumn:      "Name",
		SampleColumns:    []string{"S1", "S2", "S3", "S4", "S5"},
	}

	m, diag := BuildMatrix(tbl, sel)

	for j := 0; j < 5; j++ {
		if got := m.At(0, j); got != 0.0 {
			t.Errorf("cell %d = %v, want exactly 0.0", j, got)
		}
	}
	if diag.CoercedCells != 5 {
		t.Errorf("CoercedCells = %d, want 5", diag.CoercedCells)
	}
}

func TestBuildMatrix_DuplicateLabelsKeptAndCounted(t *testing.T) {
	tbl, err := table.New(
		[]string{"ID", "Name", "S1"},
		[]table.RowData{
			{"ID": "F1", "Name": "Glucose", "S1": "1"},
			{"ID": "F1", "Name": "Glucose", "S1": "2"},
			{"ID": "F1", "Name": "Glucose", "S1": "3"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	sel := Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1"}}

	m, diag := BuildMatrix(tbl, sel)

	// Collisions pass through unchanged; the row count is never deduplicated.
	if m.Rows() != 3 {
		t.Fatalf("row count = %d, want 3", m.Rows())
	}
	if diag.DuplicateLabels != 2 {
		t.Errorf("DuplicateLabels = %d, want 2", diag.DuplicateLabels)
	}
}

func TestBuildMatrix_IdentifierInsideSampleSet(t *testing.T) {
	// The sample set governs which columns become numeric data even when it
	// overlaps the identifier column.
	tbl, err := table.New(
		[]string{"ID", "Name", "S1"},
		[]table.RowData{{"ID": "7", "Name": "X", "S1": "2"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	sel := Selection{
		IdentifierColumn: "ID",
		LabelColumn:      "Name",
		SampleColumns:    []string{"ID", "S1"},
	}

	m, _ := BuildMatrix(tbl, sel)

	if m.Cols() != 2 {
		t.Fatalf("col count = %d, want 2", m.Cols())
	}
	if m.At(0, 0) != 7 || m.At(0, 1) != 2 {
		t.Errorf("row = [%v %v], want [7 2]", m.At(0, 0), m.At(0, 1))
	}
}
