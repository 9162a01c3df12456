package resolver

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// ErrAnchorNotFound indicates the requested anchor occurrence does not
// exist in the searched column.
var ErrAnchorNotFound = errors.New("anchor not found")

// ErrKeywordNotFound indicates no terminating keyword exists at or below
// the block's start row.
var ErrKeywordNotFound = errors.New("keyword not found")

// ResolvedBlock is one block spec resolved to concrete grid ranges.
type ResolvedBlock struct {
	// Data is the block's main region. It may be empty (zero rows).
	Data Range
	// Total is the optional single-row total range appended after Data.
	Total *Range
}

// ResolveBlock resolves one BlockSpec against the grid. When clip is true,
// end bounds overhanging the grid are trimmed; otherwise any overhang is
// an ErrRangeOutOfBounds. The spec is a closed union: exactly one of
// Range or Start must be set.
func ResolveBlock(g models.Grid, spec models.BlockSpec, clip bool) (ResolvedBlock, error) {
	var (
		data Range
		err  error
	)
	switch {
	case spec.Range != "" && spec.Start != nil:
		return ResolvedBlock{}, fmt.Errorf("%w: block sets both range and start", ErrInvalidAddress)
	case spec.Range != "":
		data, err = resolveFixed(g, spec.Range, clip)
	case spec.Start != nil:
		data, err = resolveAnchored(g, spec, clip)
	default:
		return ResolvedBlock{}, fmt.Errorf("%w: block sets neither range nor start", ErrInvalidAddress)
	}
	if err != nil {
		return ResolvedBlock{}, err
	}

	block := ResolvedBlock{Data: data}
	if spec.Total != "" {
		total, err := resolveTotal(g, spec.Total, clip)
		if err != nil {
			return ResolvedBlock{}, err
		}
		block.Total = &total
	}
	return block, nil
}

func resolveFixed(g models.Grid, a1 string, clip bool) (Range, error) {
	r, err := ParseRange(a1)
	if err != nil {
		return Range{}, err
	}
	return BoundRange(r, g, clip)
}

func resolveAnchored(g models.Grid, spec models.BlockSpec, clip bool) (Range, error) {
	if spec.Columns == "" {
		return Range{}, fmt.Errorf("%w: anchored block requires a columns span", ErrInvalidAddress)
	}
	startCol, endCol, err := ParseColumnSpan(spec.Columns)
	if err != nil {
		return Range{}, err
	}

	start := spec.Start
	anchorCol, err := columnIndex(start.Column)
	if err != nil {
		return Range{}, err
	}
	q := Query{Text: start.Text, Mode: start.Mode, CaseInsensitive: start.CaseInsensitive}
	row, err := FindOccurrence(g, anchorCol, q, start.Occurrence)
	if err != nil {
		return Range{}, err
	}
	if row == NotFound {
		occ := start.Occurrence
		if occ == 0 {
			occ = 1
		}
		return Range{}, fmt.Errorf("%w: %q occurrence %d in column %s",
			ErrAnchorNotFound, start.Text, occ, start.Column)
	}
	startRow := row + start.RowDelta

	endRow, err := resolveEnd(g, spec.End, startRow)
	if err != nil {
		return Range{}, err
	}

	r := Range{StartRow: startRow, EndRow: endRow, StartCol: startCol, EndCol: endCol}
	if r.Rows() == 0 {
		// Empty block: no cells to bound-check.
		return r, nil
	}
	return BoundRange(r, g, clip)
}

// resolveEnd computes the zero-based end row of an anchored block. A nil
// end spec means the last grid row.
func resolveEnd(g models.Grid, end *models.EndSpec, startRow int) (int, error) {
	switch {
	case end == nil:
		return g.RowCount() - 1, nil
	case end.Row > 0 && end.Keyword != nil:
		return 0, fmt.Errorf("%w: end sets both row and keyword", ErrInvalidAddress)
	case end.Row > 0:
		return end.Row - 1, nil
	case end.Keyword != nil:
		kw := end.Keyword
		col, err := columnIndex(kw.Column)
		if err != nil {
			return 0, err
		}
		q := Query{Text: kw.Text, Mode: kw.Mode, CaseInsensitive: kw.CaseInsensitive}
		row, err := ResolveKeywordEnd(g, col, q, startRow, kw.RowOffset)
		if err != nil {
			return 0, err
		}
		if row == NotFound {
			return 0, fmt.Errorf("%w: %q in column %s below row %d",
				ErrKeywordNotFound, kw.Text, kw.Column, startRow+1)
		}
		return row, nil
	default:
		return 0, fmt.Errorf("%w: end sets neither row nor keyword", ErrInvalidAddress)
	}
}

func resolveTotal(g models.Grid, a1 string, clip bool) (Range, error) {
	r, err := ParseRange(a1)
	if err != nil {
		return Range{}, err
	}
	if r.StartRow != r.EndRow {
		return Range{}, fmt.Errorf("%w: total %q must be a single row", ErrInvalidAddress, a1)
	}
	return BoundRange(r, g, clip)
}

// BoundRange applies the bounds policy to a non-empty range: the start
// corner must be on the grid, the end corner is clipped or rejected.
func BoundRange(r Range, g models.Grid, clip bool) (Range, error) {
	rows, cols := g.RowCount(), g.ColCount()
	if err := checkStart(r, rows, cols); err != nil {
		return Range{}, err
	}
	if clip {
		return Clip(r, rows, cols), nil
	}
	if err := CheckBounds(r, rows, cols); err != nil {
		return Range{}, err
	}
	return r, nil
}

func columnIndex(letter string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q", ErrInvalidAddress, letter)
	}
	return n - 1, nil
}
