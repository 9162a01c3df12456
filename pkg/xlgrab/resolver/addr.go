// Package resolver turns declarative block specs into concrete grid ranges
// and extracts the resulting cells.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidAddress indicates malformed A1 notation.
var ErrInvalidAddress = errors.New("invalid address")

// ErrRangeOutOfBounds indicates a requested range exceeds the grid extent
// while clipping is disabled.
var ErrRangeOutOfBounds = errors.New("range out of bounds")

// Range is an inclusive rectangular region in zero-based coordinates.
// A range with EndRow < StartRow is empty (zero data rows) and valid.
type Range struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// Rows returns the number of rows the range spans (0 when empty).
func (r Range) Rows() int {
	if r.EndRow < r.StartRow {
		return 0
	}
	return r.EndRow - r.StartRow + 1
}

// Cols returns the number of columns the range spans.
func (r Range) Cols() int {
	if r.EndCol < r.StartCol {
		return 0
	}
	return r.EndCol - r.StartCol + 1
}

// Normalize swaps start and end per axis when given in reverse order.
func (r Range) Normalize() Range {
	if r.StartRow > r.EndRow {
		r.StartRow, r.EndRow = r.EndRow, r.StartRow
	}
	if r.StartCol > r.EndCol {
		r.StartCol, r.EndCol = r.EndCol, r.StartCol
	}
	return r
}

// ParseCell parses a single A1 cell address into zero-based (row, col).
func ParseCell(addr string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.TrimSpace(addr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return r - 1, c - 1, nil
}

// ParseRange parses an inclusive A1 range ("A2:B6"). A single cell address
// yields a degenerate one-cell range. Reversed bounds are normalized.
func ParseRange(a1 string) (Range, error) {
	a1 = strings.TrimSpace(a1)
	start, end, found := strings.Cut(a1, ":")
	if !found {
		end = start
	}
	sr, sc, err := ParseCell(start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidAddress, a1)
	}
	er, ec, err := ParseCell(end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidAddress, a1)
	}
	return Range{StartRow: sr, EndRow: er, StartCol: sc, EndCol: ec}.Normalize(), nil
}

// ParseColumnSpan parses a fixed column span ("A:B", or "A" for a single
// column) into zero-based (startCol, endCol).
func ParseColumnSpan(span string) (startCol, endCol int, err error) {
	span = strings.TrimSpace(span)
	start, end, found := strings.Cut(span, ":")
	if !found {
		end = start
	}
	s, err := excelize.ColumnNameToNumber(strings.TrimSpace(start))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column span %q", ErrInvalidAddress, span)
	}
	e, err := excelize.ColumnNameToNumber(strings.TrimSpace(end))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column span %q", ErrInvalidAddress, span)
	}
	if s > e {
		s, e = e, s
	}
	return s - 1, e - 1, nil
}

// FormatRange renders a range back into A1 notation. Used in error
// messages; degenerate ranges render as a single cell.
func FormatRange(r Range) string {
	start, _ := excelize.CoordinatesToCellName(r.StartCol+1, r.StartRow+1)
	if r.StartRow == r.EndRow && r.StartCol == r.EndCol {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.EndCol+1, r.EndRow+1)
	return start + ":" + end
}

// Clip clamps the range's end bounds to the grid extent. The start bounds
// must already lie inside the grid; Clip only trims overhang at the end.
func Clip(r Range, rows, cols int) Range {
	if r.EndRow > rows-1 {
		r.EndRow = rows - 1
	}
	if r.EndCol > cols-1 {
		r.EndCol = cols - 1
	}
	return r
}

// CheckBounds verifies the range lies fully inside a grid of the given
// extent. Used when clipping is disabled.
func CheckBounds(r Range, rows, cols int) error {
	if r.StartRow < 0 || r.StartCol < 0 || r.EndRow > rows-1 || r.EndCol > cols-1 {
		return fmt.Errorf("%w: %s exceeds grid %dx%d", ErrRangeOutOfBounds, FormatRange(r), rows, cols)
	}
	return nil
}

// checkStart verifies the start corner is addressable on the grid. Clipping
// never rescues a start that lies entirely outside the sheet.
func checkStart(r Range, rows, cols int) error {
	if r.StartRow < 0 || r.StartCol < 0 || r.StartRow > rows-1 || r.StartCol > cols-1 {
		return fmt.Errorf("%w: start of %s exceeds grid %dx%d", ErrRangeOutOfBounds, FormatRange(r), rows, cols)
	}
	return nil
}
