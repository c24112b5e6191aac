package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trikaloudis/aquomixlab-heatmaps/adapters/render"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/core"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
	"github.com/trikaloudis/aquomixlab-heatmaps/internal"
	apperrors "github.com/trikaloudis/aquomixlab-heatmaps/internal/errors"
)

// RunResult is the outcome of one pipeline run: the render handle, the final
// matrix behind it, and the build diagnostics.
type RunResult struct {
	Chart       *render.Chart
	Matrix      *heatmap.Matrix
	Diagnostics heatmap.Diagnostics
}

// ExportFormats in bundle order.
var ExportFormats = []string{"svg", "pdf", "png", "csv"}

// ExportBundle carries the per-artifact outcome of one export fan-out. A
// failed artifact records its error without touching its siblings.
type ExportBundle struct {
	Artifacts map[string][]byte
	Errors    map[string]error
}

// HeatmapService orchestrates the transform pipeline: validate the
// selection, build the matrix, apply transforms, hand the result to
// rendering. One run is strictly sequential and either completes or fails
// entirely; nothing is cached between runs.
type HeatmapService struct {
	exportTimeout time.Duration
}

// NewHeatmapService creates the pipeline service. exportTimeout bounds the
// export fan-out, not the pipeline itself.
func NewHeatmapService(exportTimeout time.Duration) *HeatmapService {
	return &HeatmapService{exportTimeout: exportTimeout}
}

// Run executes one full pipeline pass over an immutable table. Validation
// errors stop the run before any transform; past validation the run always
// produces a fully shaped matrix.
func (s *HeatmapService) Run(t *table.Table, sel heatmap.Selection, tcfg heatmap.TransformConfig, rcfg heatmap.RenderConfig) (*RunResult, error) {
	if err := heatmap.ResolveSelection(t, sel); err != nil {
		switch {
		case errors.Is(err, core.ErrEmptySelection):
			return nil, apperrors.EmptySelection()
		case errors.Is(err, core.ErrUnknownColumn):
			return nil, apperrors.UnknownColumn(err)
		default:
			return nil, apperrors.Wrap(err, "selection validation failed")
		}
	}

	built, diag := heatmap.BuildMatrix(t, sel)
	final := heatmap.Transform(built, tcfg)
	chart := render.NewChart(final, rcfg, chartTitle(tcfg))

	if diag.CoercedCells > 0 || diag.DuplicateLabels > 0 {
		internal.DefaultLogger.Warn("[HeatmapService] Matrix built with diagnostics: %d coerced cells, %d duplicate labels",
			diag.CoercedCells, diag.DuplicateLabels)
	}

	return &RunResult{Chart: chart, Matrix: final, Diagnostics: diag}, nil
}

// Export encodes every artifact format from an already-rendered chart. The
// encoders run concurrently under the configured timeout; each artifact
// records its own error and a failure never blocks or rolls back a sibling
// that succeeded. The timeout gates artifact start only: an encoder that has
// begun runs to completion, since the encoders are in-memory and bounded by
// the matrix size rather than by I/O.
func (s *HeatmapService) Export(ctx context.Context, chart *render.Chart, pngScale int) *ExportBundle {
	ctx, cancel := context.WithTimeout(ctx, s.exportTimeout)
	defer cancel()

	bundle := &ExportBundle{
		Artifacts: make(map[string][]byte, len(ExportFormats)),
		Errors:    make(map[string]error),
	}

	encoders := map[string]func() ([]byte, error){
		"svg": chart.SVG,
		"pdf": chart.PDF,
		"png": func() ([]byte, error) { return chart.PNG(pngScale) },
		"csv": chart.CSV,
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([][]byte, len(ExportFormats))
	errs := make([]error, len(ExportFormats))
	for i, format := range ExportFormats {
		encode := encoders[format]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			data, err := encode()
			results[i], errs[i] = data, err
			// Per-artifact isolation: never propagate into the group.
			return nil
		})
	}
	_ = g.Wait()

	for i, format := range ExportFormats {
		if errs[i] != nil {
			internal.DefaultLogger.Error("[HeatmapService] Export %s failed: %v", format, errs[i])
			bundle.Errors[format] = apperrors.ExportFailure(format, errs[i])
			continue
		}
		bundle.Artifacts[format] = results[i]
	}
	return bundle
}

// ExportOne encodes a single artifact format, for the download endpoints.
func (s *HeatmapService) ExportOne(ctx context.Context, chart *render.Chart, format string, pngScale int) ([]byte, error) {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case "svg":
		data, err = chart.SVG()
	case "pdf":
		data, err = chart.PDF()
	case "png":
		data, err = chart.PNG(pngScale)
	case "csv":
		data, err = chart.CSV()
	default:
		return nil, apperrors.InvalidInput("unsupported export format: " + format)
	}
	if err != nil {
		return nil, apperrors.ExportFailure(format, err)
	}
	return data, nil
}

// chartTitle mirrors the transform toggles in the rendered title.
func chartTitle(tcfg heatmap.TransformConfig) string {
	title := "Heatmap: "
	if tcfg.Standardize {
		title += "Normalized "
	}
	if tcfg.Log10 {
		title += "Log10 "
	}
	return title + "Intensities"
}
