package render

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
)

// pdfVersion is the PDF specification version emitted.
const pdfVersion = "1.4"

// PDF renders the chart as a single-page PDF document: one zlib-compressed
// content stream of filled rectangles and Helvetica text, a minimal object
// graph (catalog, page tree, font, stream, page), and a standard xref table.
// One layout unit maps to one PDF point.
func (c *Chart) PDF() ([]byte, error) {
	l := c.layout
	content := c.pdfContent()

	var stream bytes.Buffer
	zw := zlib.NewWriter(&stream)
	if _, err := zw.Write([]byte(content)); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	objects := []string{
		// 1: catalog
		"<< /Type /Catalog /Pages 2 0 R >>",
		// 2: page tree
		"<< /Type /Pages /Kids [5 0 R] /Count 1 >>",
		// 3: font
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		// 4: content stream
		fmt.Sprintf("<< /Length %d /Filter /FlateDecode >>\nstream\n%sendstream", stream.Len(), stream.Bytes()),
		// 5: page
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents 4 0 R /Resources << /Font << /F1 3 0 R >> >> >>",
			l.width, l.height),
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("%%PDF-%s\n", pdfVersion))
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	xref := make([]int, len(objects)+1)
	for i, obj := range objects {
		xref[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", xref[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefPos)

	return buf.Bytes(), nil
}

// pdfContent builds the page content stream. PDF's origin is bottom-left,
// so layout y coordinates flip against the page height.
func (c *Chart) pdfContent() string {
	l := c.layout
	var sb strings.Builder

	sb.WriteString("q\n")
	sb.WriteString("1 1 1 rg\n")
	fmt.Fprintf(&sb, "0 0 %.2f %.2f re f\n", l.width, l.height)

	for i := 0; i < c.matrix.Rows(); i++ {
		for j := 0; j < c.matrix.Cols(); j++ {
			x, y := l.cellRect(i, j)
			cc := c.cellColor(i, j)
			fmt.Fprintf(&sb, "%.3f %.3f %.3f rg\n",
				float64(cc.R)/255, float64(cc.G)/255, float64(cc.B)/255)
			fmt.Fprintf(&sb, "%.2f %.2f %.2f %.2f re f\n",
				x, l.height-y-l.cellH, l.cellW, l.cellH)
		}
	}

	sb.WriteString("0 0 0 rg\n")
	if c.title != "" {
		c.pdfText(&sb, l.left, l.titleHeight-10, l.fontSize+4, c.title)
	}

	for i, label := range c.matrix.RowLabels {
		_, y := l.cellRect(i, 0)
		// Right-align by backing off the approximate text width.
		w := float64(len(label)) * l.fontSize * charAspect
		c.pdfText(&sb, l.left-pad-w, y+l.cellH/2+l.fontSize*0.35, l.fontSize, label)
	}

	baseY := l.top + float64(c.matrix.Rows())*l.cellH + pad
	for j, col := range c.matrix.Columns {
		x, _ := l.cellRect(0, j)
		c.pdfText(&sb, x+2, baseY+l.fontSize, l.fontSize, col)
	}

	sb.WriteString("Q\n")
	return sb.String()
}

// pdfText writes one text run at layout coordinates (top-left origin).
func (c *Chart) pdfText(sb *strings.Builder, x, y, size float64, text string) {
	fmt.Fprintf(sb, "BT\n/F1 %.2f Tf\n%.2f %.2f Td\n(%s) Tj\nET\n",
		size, x, c.layout.height-y, escapePDFString(text))
}

// escapePDFString escapes special characters for PDF text strings.
func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "(", "\\(")
	s = strings.ReplaceAll(s, ")", "\\)")
	return s
}
