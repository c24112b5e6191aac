package render

import (
	"math"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
)

// layout holds the chart geometry in abstract units (CSS pixels for SVG,
// multiplied by the scale factor for PNG, points for PDF).
type layout struct {
	width, height float64
	left, top     float64
	cellW, cellH  float64
	fontSize      float64
	titleHeight   float64
	bottomGutter  float64
}

const (
	minCellW    = 28.0
	pad         = 8.0
	charAspect  = 0.62 // approximate Helvetica advance per font-size unit
	titleMargin = 30.0
)

// computeLayout sizes the chart so every row label, column label and cell
// fits: the left gutter tracks the widest row label, the bottom gutter the
// widest column label (drawn rotated), and cell height follows the font.
func computeLayout(m *heatmap.Matrix, fontSize int, title string) layout {
	fs := float64(fontSize)

	maxRowLabel := 0
	for _, l := range m.RowLabels {
		if len(l) > maxRowLabel {
			maxRowLabel = len(l)
		}
	}
	maxColLabel := 0
	for _, c := range m.Columns {
		if len(c) > maxColLabel {
			maxColLabel = len(c)
		}
	}

	l := layout{
		fontSize:     fs,
		cellH:        fs + 5,
		cellW:        minCellW,
		left:         float64(maxRowLabel)*fs*charAspect + 2*pad,
		bottomGutter: float64(maxColLabel)*fs*charAspect + 2*pad,
	}
	if w := fs * 2.5; w > l.cellW {
		l.cellW = w
	}
	if title != "" {
		l.titleHeight = titleMargin
	}
	l.top = l.titleHeight + pad

	// Whole units, so rasterizing at an integer scale multiplies exactly.
	l.width = math.Ceil(l.left + float64(m.Cols())*l.cellW + pad)
	l.height = math.Ceil(l.top + float64(m.Rows())*l.cellH + l.bottomGutter)
	return l
}

// cellRect returns the top-left corner of cell (i, j) in layout units.
func (l layout) cellRect(i, j int) (x, y float64) {
	return l.left + float64(j)*l.cellW, l.top + float64(i)*l.cellH
}
