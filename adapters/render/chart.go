package render

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
)

// Chart is the render handle for one final matrix. It is built once per
// pipeline run and can produce every export encoding; a failed export never
// invalidates the handle or its siblings.
type Chart struct {
	matrix *heatmap.Matrix
	config heatmap.RenderConfig
	title  string
	stops  []Color
	layout layout

	// Normalization bounds over the finite cells.
	min, max float64
}

// NewChart prepares a matrix for rendering. The caller guarantees the matrix
// is fully shaped (labels match row/column counts); the chart only derives
// geometry and color normalization from it.
func NewChart(m *heatmap.Matrix, cfg heatmap.RenderConfig, title string) *Chart {
	cfg.FontSize = heatmap.ClampFontSize(cfg.FontSize)
	if cfg.Scale < 1 {
		cfg.Scale = heatmap.DefaultScale
	}

	c := &Chart{
		matrix: m,
		config: cfg,
		title:  title,
		stops:  paletteStops(cfg.Palette),
	}
	c.min, c.max = finiteBounds(m)
	c.layout = computeLayout(m, cfg.FontSize, title)
	return c
}

// Matrix returns the matrix behind the chart.
func (c *Chart) Matrix() *heatmap.Matrix {
	return c.matrix
}

// cellColor maps the value at (i, j) onto the palette.
func (c *Chart) cellColor(i, j int) Color {
	v := c.matrix.At(i, j)
	if math.IsNaN(v) {
		return missingColor
	}
	if c.max == c.min {
		// Flat matrix: everything sits at the low end of the scale.
		return colorAt(c.stops, 0)
	}
	return colorAt(c.stops, (v-c.min)/(c.max-c.min))
}

// finiteBounds scans the matrix for its finite min and max. NaN cells are
// skipped; an all-NaN matrix normalizes against [0,1].
func finiteBounds(m *heatmap.Matrix) (float64, float64) {
	finite := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v := m.At(i, j); !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
	}
	if len(finite) == 0 {
		return 0, 1
	}
	return floats.Min(finite), floats.Max(finite)
}
