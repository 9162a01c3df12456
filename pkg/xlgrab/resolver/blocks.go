package resolver

import (
	"errors"
	"fmt"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// ErrColumnCountMismatch indicates blocks under one rule disagree on
// column count; one header cannot apply to all of them.
var ErrColumnCountMismatch = errors.New("column count mismatch")

// ExtractRange slices the grid over an inclusive range. The returned rows
// are freshly allocated; an empty range yields no rows.
func ExtractRange(g models.Grid, r Range) [][]any {
	if r.Rows() == 0 {
		return nil
	}
	rows := make([][]any, 0, r.Rows())
	for row := r.StartRow; row <= r.EndRow; row++ {
		cells := make([]any, 0, r.Cols())
		for col := r.StartCol; col <= r.EndCol; col++ {
			cells = append(cells, g.CellAt(row, col))
		}
		rows = append(rows, cells)
	}
	return rows
}

// ExtractBlocks extracts and concatenates resolved blocks strictly in the
// given order, appending each block's total row immediately after its data
// rows. All blocks and totals must agree on column count; a disagreement
// is an ErrColumnCountMismatch for the whole rule.
func ExtractBlocks(g models.Grid, blocks []ResolvedBlock) ([][]any, error) {
	width := -1
	checkWidth := func(what string, i, cols int) error {
		if width == -1 {
			width = cols
			return nil
		}
		if cols != width {
			return fmt.Errorf("%w: %s %d spans %d columns, rule spans %d",
				ErrColumnCountMismatch, what, i+1, cols, width)
		}
		return nil
	}

	var out [][]any
	for i, b := range blocks {
		if b.Data.Rows() > 0 {
			if err := checkWidth("block", i, b.Data.Cols()); err != nil {
				return nil, err
			}
		}
		out = append(out, ExtractRange(g, b.Data)...)
		if b.Total != nil {
			if err := checkWidth("total of block", i, b.Total.Cols()); err != nil {
				return nil, err
			}
			out = append(out, ExtractRange(g, *b.Total)...)
		}
	}
	return out, nil
}

// StripEmptyRows removes every row whose cells are all blank, preserving
// the relative order of the rest. Running it twice is a no-op.
func StripEmptyRows(rows [][]any) [][]any {
	out := rows[:0:0]
	for _, row := range rows {
		blank := true
		for _, cell := range row {
			if !models.IsBlank(cell) {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
