// Package excel loads xlsx workbooks into in-memory grids for extraction.
package excel

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// Workbook is a GridProvider over one xlsx file. Every sheet is
// materialized as an immutable grid when the workbook is opened; the
// engine performs no file I/O afterwards.
type Workbook struct {
	name   string
	order  []string
	sheets map[string]*models.SliceGrid
}

// OpenWorkbook reads an xlsx file and materializes all of its sheets.
// A sheet that fails to read loads as an empty grid rather than failing
// the whole workbook.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := &Workbook{
		name:   path,
		sheets: make(map[string]*models.SliceGrid),
	}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			rows = nil
		}
		wb.order = append(wb.order, sheet)
		wb.sheets[sheet] = materialize(rows)
	}
	return wb, nil
}

// Grid returns the named sheet's grid, or an error wrapping
// xlgrab.ErrSheetNotFound.
func (w *Workbook) Grid(sheet string) (models.Grid, error) {
	g, ok := w.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", xlgrab.ErrSheetNotFound, sheet, w.name)
	}
	return g, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.order...)
}

// materialize converts excelize row data into a grid, parsing numeric
// cell text into typed values.
func materialize(rows [][]string) *models.SliceGrid {
	cells := make([][]any, len(rows))
	for i, row := range rows {
		vals := make([]any, len(row))
		for j, cell := range row {
			vals[j] = parseValue(cell)
		}
		cells[i] = vals
	}
	return models.NewSliceGrid(cells)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// LastDataRow returns the zero-based row of the last non-blank cell in
// the given column, or -1 when the column is entirely blank.
func LastDataRow(g models.Grid, col int) int {
	for row := g.RowCount() - 1; row >= 0; row-- {
		if !models.IsBlank(g.CellAt(row, col)) {
			return row
		}
	}
	return -1
}
