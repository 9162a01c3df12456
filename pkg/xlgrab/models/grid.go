// Package models defines data structures for declarative spreadsheet extraction.
package models

import "strings"

// Grid is an immutable 2D view of one sheet's cell values.
// Coordinates are zero-based; callers own the backing data and must not
// mutate it while a resolution pass is running.
type Grid interface {
	// CellAt returns the value at (row, col), or nil when the address is
	// outside the grid or the cell was never populated.
	CellAt(row, col int) any
	// RowCount returns the number of rows in the grid.
	RowCount() int
	// ColCount returns the number of columns in the grid.
	ColCount() int
}

// SliceGrid is a Grid backed by a row-major slice of cell values.
// Rows may be ragged; missing trailing cells read as nil.
type SliceGrid struct {
	cells [][]any
	cols  int
}

// NewSliceGrid builds a SliceGrid from row-major cell values.
// The column count is the width of the widest row.
func NewSliceGrid(cells [][]any) *SliceGrid {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &SliceGrid{cells: cells, cols: cols}
}

func (g *SliceGrid) CellAt(row, col int) any {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return nil
	}
	r := g.cells[row]
	if col >= len(r) {
		return nil
	}
	return r[col]
}

func (g *SliceGrid) RowCount() int { return len(g.cells) }

func (g *SliceGrid) ColCount() int { return g.cols }

// IsBlank reports whether a cell value counts as empty: nil or a string
// that is empty after trimming whitespace.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
