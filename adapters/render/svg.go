package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// SVG renders the chart as a standalone SVG document. Output is fully
// deterministic for a given matrix and configuration.
func (c *Chart) SVG() ([]byte, error) {
	var buf bytes.Buffer
	l := c.layout

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		l.width, l.height, l.width, l.height)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="#FFFFFF"/>`+"\n", l.width, l.height)

	if c.title != "" {
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="Helvetica, sans-serif" font-size="%.0f" font-weight="bold">%s</text>`+"\n",
			l.left, l.titleHeight-10, l.fontSize+4, xmlEscape(c.title))
	}

	// Cell grid.
	for i := 0; i < c.matrix.Rows(); i++ {
		for j := 0; j < c.matrix.Cols(); j++ {
			x, y := l.cellRect(i, j)
			fmt.Fprintf(&buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				x, y, l.cellW, l.cellH, c.cellColor(i, j).hex())
		}
	}

	// Row labels, right-aligned against the grid.
	for i, label := range c.matrix.RowLabels {
		_, y := l.cellRect(i, 0)
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="Helvetica, sans-serif" font-size="%.0f" text-anchor="end">%s</text>`+"\n",
			l.left-pad, y+l.cellH/2+l.fontSize*0.35, l.fontSize, xmlEscape(label))
	}

	// Column labels, rotated under the grid.
	baseY := l.top + float64(c.matrix.Rows())*l.cellH + pad
	for j, col := range c.matrix.Columns {
		x, _ := l.cellRect(0, j)
		cx := x + l.cellW/2
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="Helvetica, sans-serif" font-size="%.0f" text-anchor="end" transform="rotate(-45 %.1f %.1f)">%s</text>`+"\n",
			cx, baseY+l.fontSize, l.fontSize, cx, baseY+l.fontSize, xmlEscape(col))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText only fails on a failing writer; bytes.Buffer cannot.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
