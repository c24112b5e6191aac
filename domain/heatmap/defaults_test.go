package heatmap

import (
	"reflect"
	"testing"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

func TestDefaultSelection_NameHeuristics(t *testing.T) {
	tbl, err := table.New(
		[]string{"Feature_ID", "Compound_Name", "S1", "S2", "S3"},
		[]table.RowData{{"Feature_ID": "F1"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	sel := DefaultSelection(tbl)

	if sel.IdentifierColumn != "Feature_ID" {
		t.Errorf("identifier = %q, want Feature_ID", sel.IdentifierColumn)
	}
	if sel.LabelColumn != "Compound_Name" {
		t.Errorf("label = %q, want Compound_Name", sel.LabelColumn)
	}
	if !reflect.DeepEqual(sel.SampleColumns, []string{"S1", "S2", "S3"}) {
		t.Errorf("samples = %v, want remaining columns", sel.SampleColumns)
	}
}

func TestDefaultSelection_FallbackToLeadingColumns(t *testing.T) {
	tbl, err := table.New(
		[]string{"Alpha", "Beta", "Gamma"},
		[]table.RowData{{"Alpha": "x"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	sel := DefaultSelection(tbl)

	if sel.IdentifierColumn != "Alpha" {
		t.Errorf("identifier = %q, want first column", sel.IdentifierColumn)
	}
	if sel.LabelColumn != "Beta" {
		t.Errorf("label = %q, want second column", sel.LabelColumn)
	}
	if !reflect.DeepEqual(sel.SampleColumns, []string{"Gamma"}) {
		t.Errorf("samples = %v, want [Gamma]", sel.SampleColumns)
	}
}

func TestDefaultSelection_SingleColumnTable(t *testing.T) {
	tbl, err := table.New([]string{"Only"}, []table.RowData{{"Only": "x"}})
	if err != nil {
		t.Fatal(err)
	}

	sel := DefaultSelection(tbl)

	if sel.IdentifierColumn != "Only" || sel.LabelColumn != "Only" {
		t.Errorf("got identifier=%q label=%q, want both Only", sel.IdentifierColumn, sel.LabelColumn)
	}
	if len(sel.SampleColumns) != 0 {
		t.Errorf("samples = %v, want none", sel.SampleColumns)
	}
}
