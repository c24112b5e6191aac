package table

import "fmt"

// RowData maps a column name to the raw cell value for one row.
// Cells are kept as strings until the matrix builder coerces them.
type RowData map[string]string

// Table is one loaded tabular dataset: ordered headers plus raw rows.
// A Table is read-only once built; every pipeline run reads the same value.
type Table struct {
	Headers []string
	Rows    []RowData
}

// New builds a Table and checks the minimal shape contract: at least one
// column and at least one data row.
func New(headers []string, rows []RowData) (*Table, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no data rows")
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

// HasColumn reports whether name is one of the table's headers.
// Headers are not necessarily unique; the first occurrence wins everywhere.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Cell returns the raw value of column name in the given row, and whether
// the row carries that column at all.
func (t *Table) Cell(row int, name string) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	v, ok := t.Rows[row][name]
	return v, ok
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}
