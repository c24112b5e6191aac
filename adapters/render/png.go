package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNG rasterizes the chart at the given integer scale factor (cells and
// gutters multiply; label text renders in a fixed bitmap face). scale < 1
// falls back to the chart's configured scale.
func (c *Chart) PNG(scale int) ([]byte, error) {
	if scale < 1 {
		scale = c.config.Scale
	}
	l := c.layout
	s := float64(scale)

	img := image.NewRGBA(image.Rect(0, 0, int(l.width*s), int(l.height*s)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := 0; i < c.matrix.Rows(); i++ {
		for j := 0; j < c.matrix.Cols(); j++ {
			x, y := l.cellRect(i, j)
			cell := image.Rect(int(x*s), int(y*s), int((x+l.cellW)*s), int((y+l.cellH)*s))
			cc := c.cellColor(i, j)
			draw.Draw(img, cell, image.NewUniform(color.RGBA{cc.R, cc.G, cc.B, 255}), image.Point{}, draw.Src)
		}
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	if c.title != "" {
		drawer.Dot = fixed.P(int(l.left*s), int((l.titleHeight-10)*s))
		drawer.DrawString(c.title)
	}

	// Row labels, right-aligned against the grid.
	for i, label := range c.matrix.RowLabels {
		_, y := l.cellRect(i, 0)
		w := drawer.MeasureString(label)
		drawer.Dot = fixed.P(int((l.left-pad)*s), int((y+l.cellH/2)*s)+6).Sub(fixed.Point26_6{X: w})
		drawer.DrawString(label)
	}

	// Column labels, horizontal (the bitmap face cannot rotate).
	baseY := l.top + float64(c.matrix.Rows())*l.cellH + pad
	for j, col := range c.matrix.Columns {
		x, _ := l.cellRect(0, j)
		drawer.Dot = fixed.P(int(x*s)+2, int((baseY+l.fontSize)*s))
		drawer.DrawString(col)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
