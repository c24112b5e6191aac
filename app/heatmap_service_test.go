package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
	apperrors "github.com/trikaloudis/aquomixlab-heatmaps/internal/errors"
)

func serviceFixture(t *testing.T) (*HeatmapService, *table.Table) {
	t.Helper()
	tbl, err := table.New(
		[]string{"ID", "Name", "S1", "S2"},
		[]table.RowData{
			{"ID": "F1", "Name": "Glucose", "S1": "10", "S2": "20"},
			{"ID": "F2", "Name": "", "S1": "x", "S2": "8"},
		},
	)
	require.NoError(t, err)
	return NewHeatmapService(5 * time.Second), tbl
}

func TestHeatmapService_Run(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1", "S2"}}

	res, err := svc.Run(tbl, sel, heatmap.TransformConfig{}, heatmap.RenderConfig{FontSize: 10})
	require.NoError(t, err)

	require.Equal(t, 2, res.Matrix.Rows())
	require.Equal(t, 2, res.Matrix.Cols())
	require.Equal(t, "Glucose (F1)", res.Matrix.RowLabels[0])
	require.Equal(t, "Unknown (F2)", res.Matrix.RowLabels[1])
	require.Equal(t, 1, res.Diagnostics.CoercedCells) // "x"
	require.NotNil(t, res.Chart)
}

func TestHeatmapService_RunEmptySelection(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name"}

	_, err := svc.Run(tbl, sel, heatmap.TransformConfig{}, heatmap.RenderConfig{})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeEmptySelection, apperrors.GetCode(err))
}

func TestHeatmapService_RunUnknownColumn(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"Nope"}}

	_, err := svc.Run(tbl, sel, heatmap.TransformConfig{}, heatmap.RenderConfig{})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeUnknownColumn, apperrors.GetCode(err))
}

func TestHeatmapService_ExportAllArtifacts(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1", "S2"}}

	res, err := svc.Run(tbl, sel, heatmap.TransformConfig{Log10: true}, heatmap.RenderConfig{FontSize: 10})
	require.NoError(t, err)

	bundle := svc.Export(context.Background(), res.Chart, 2)

	require.Empty(t, bundle.Errors)
	for _, format := range ExportFormats {
		require.NotEmpty(t, bundle.Artifacts[format], "artifact %s missing", format)
	}
}

func TestHeatmapService_ExportCancelledContextFailsEveryArtifact(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1", "S2"}}

	res, err := svc.Run(tbl, sel, heatmap.TransformConfig{}, heatmap.RenderConfig{FontSize: 10})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bundle := svc.Export(ctx, res.Chart, 2)

	require.Empty(t, bundle.Artifacts)
	for _, format := range ExportFormats {
		require.Error(t, bundle.Errors[format], "artifact %s should not start", format)
	}
}

func TestHeatmapService_ExportOneRejectsUnknownFormat(t *testing.T) {
	svc, tbl := serviceFixture(t)
	sel := heatmap.Selection{IdentifierColumn: "ID", LabelColumn: "Name", SampleColumns: []string{"S1"}}

	res, err := svc.Run(tbl, sel, heatmap.TransformConfig{}, heatmap.RenderConfig{})
	require.NoError(t, err)

	_, err = svc.ExportOne(context.Background(), res.Chart, "gif", 1)
	require.Error(t, err)
	require.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
}

func TestChartTitle(t *testing.T) {
	cases := []struct {
		cfg  heatmap.TransformConfig
		want string
	}{
		{heatmap.TransformConfig{}, "Heatmap: Intensities"},
		{heatmap.TransformConfig{Log10: true}, "Heatmap: Log10 Intensities"},
		{heatmap.TransformConfig{Standardize: true}, "Heatmap: Normalized Intensities"},
		{heatmap.TransformConfig{Log10: true, Standardize: true}, "Heatmap: Normalized Log10 Intensities"},
	}
	for _, tc := range cases {
		if got := chartTitle(tc.cfg); got != tc.want {
			t.Errorf("chartTitle(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}
