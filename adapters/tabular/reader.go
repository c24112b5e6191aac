package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/core"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

var errFewRows = errors.New("file must have a header row and at least one data row")

// DataReader parses uploaded CSV and Excel byte streams into tables.
type DataReader struct{}

// NewDataReader creates a reader handling both CSV and XLSX uploads.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// Read parses the upload into a Table, picking the format from the filename
// extension. Anything that cannot be parsed as tabular data maps to
// ErrLoadFailure; nothing downstream runs after that.
func (r *DataReader) Read(src io.Reader, filename string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	log.Printf("[DataReader] Reading upload %s (%s)", filename, ext)

	var rows [][]string
	var err error
	switch ext {
	case ".xlsx":
		rows, err = readXLSXRows(src)
	default:
		// CSV is the default; metabolomics exports frequently arrive as
		// .txt or extension-less delimited text.
		rows, err = readCSVRows(src)
	}
	if err != nil {
		return nil, core.NewLoadError(filename, err)
	}

	tbl, err := buildTable(rows)
	if err != nil {
		return nil, core.NewLoadError(filename, err)
	}

	log.Printf("[DataReader] Loaded %s (%d columns, %d rows)", filename, tbl.ColumnCount(), tbl.RowCount())
	return tbl, nil
}

func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	// Ragged rows are padded/truncated against the header later.
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSXRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// First sheet, whatever its name.
	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

// buildTable converts raw string rows into the Table shape: trimmed headers
// from the first row, one RowData per remaining row. Short rows pad with
// empty cells, long rows truncate to header width.
func buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, errFewRows
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := make([]table.RowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(table.RowData, len(headers))
		for j, name := range headers {
			// Duplicate headers keep the first occurrence's cell.
			if _, taken := rowData[name]; taken {
				continue
			}
			if j < len(row) {
				rowData[name] = strings.TrimSpace(row[j])
			} else {
				rowData[name] = ""
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return table.New(headers, dataRows)
}
