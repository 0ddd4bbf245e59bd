package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is an immutable two-dimensional table of text cells. It is read-only
// throughout a validation run; the reconciler scans it but never mutates it.
type Table struct {
	rows [][]string
}

// New builds a Table from raw rows. Rows are blank-padded to a uniform width
// and the backing slices are copied so later mutation of the input cannot
// leak into the table.
func New(rows [][]string) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		copied[i] = padded
	}
	return &Table{rows: copied}
}

// Rows returns the table contents, one slice per row.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Cells returns every cell value flattened in row-major order. Reconciliation
// scans the whole table, not just the row an identifier appeared in.
func (t *Table) Cells() []string {
	var out []string
	for _, row := range t.rows {
		out = append(out, row...)
	}
	return out
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// Load reads a spreadsheet file, dispatching on its extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .xlsx or .csv)", filepath.Ext(path))
	}
}

// dropFirstColumn applies the workbook presentation convention: the leading
// column is an ordering artifact and is excluded from matching whenever the
// sheet has more than one column.
func dropFirstColumn(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width <= 1 {
		return rows
	}
	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > 1 {
			trimmed[i] = row[1:]
		} else {
			trimmed[i] = nil
		}
	}
	return trimmed
}
