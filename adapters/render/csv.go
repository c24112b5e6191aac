package render

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSV re-serializes the final matrix as delimited text: sample columns as
// the header row, the row label as the first cell of each data row, values
// formatted so re-parsing them reproduces the exact floats.
func (c *Chart) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{""}, c.matrix.Columns...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, label := range c.matrix.RowLabels {
		record := make([]string, 0, c.matrix.Cols()+1)
		record = append(record, label)
		for j := 0; j < c.matrix.Cols(); j++ {
			record = append(record, strconv.FormatFloat(c.matrix.At(i, j), 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
