package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// NotFound is returned by the search functions when no matching cell
// exists. It is not an error by itself; the caller decides how an unmet
// anchor or keyword is classified.
const NotFound = -1

// Query describes one text search over a column.
type Query struct {
	Text            string
	Mode            models.MatchMode
	CaseInsensitive bool
}

// matcher compiles a query into a cell predicate. Exact matching trims
// whitespace before comparing; contains is a literal substring test.
func matcher(q Query) (func(string) bool, error) {
	text := q.Text
	switch q.Mode {
	case models.MatchExact, "":
		if q.CaseInsensitive {
			text = strings.ToLower(text)
		}
		return func(cell string) bool {
			cell = strings.TrimSpace(cell)
			if q.CaseInsensitive {
				cell = strings.ToLower(cell)
			}
			return cell == text
		}, nil
	case models.MatchContains:
		if q.CaseInsensitive {
			text = strings.ToLower(text)
		}
		return func(cell string) bool {
			if q.CaseInsensitive {
				cell = strings.ToLower(cell)
			}
			return strings.Contains(cell, text)
		}, nil
	case models.MatchRegex:
		if q.CaseInsensitive {
			text = "(?i)" + text
		}
		re, err := regexp.Compile(text)
		if err != nil {
			return nil, fmt.Errorf("invalid regex %q: %w", q.Text, err)
		}
		return re.MatchString, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q", q.Mode)
	}
}

// cellText renders a cell value for matching; nil reads as "".
func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// FindOccurrence scans the given zero-based column top to bottom and
// returns the zero-based row of the nth matching cell, or NotFound.
// nth is 1-based; negative counts from the end (-1 is the last hit), zero
// means 1. Every call scans the full column; independent block
// resolutions share no state.
func FindOccurrence(g models.Grid, col int, q Query, nth int) (int, error) {
	match, err := matcher(q)
	if err != nil {
		return NotFound, err
	}
	if nth == 0 {
		nth = 1
	}

	var hits []int
	for row := 0; row < g.RowCount(); row++ {
		if match(cellText(g.CellAt(row, col))) {
			hits = append(hits, row)
		}
	}

	k := nth - 1
	if nth < 0 {
		k = len(hits) + nth
	}
	if k < 0 || k >= len(hits) {
		return NotFound, nil
	}
	return hits[k], nil
}

// ResolveKeywordEnd scans forward from startRow for the first cell in col
// matching the query, then returns matchRow + rowOffset. The offset is
// typically -1 ("the row before the keyword"). Returns NotFound when no
// match exists at or below startRow. A returned row below startRow means
// the block is empty, which is the caller's concern, not an error.
func ResolveKeywordEnd(g models.Grid, col int, q Query, startRow, rowOffset int) (int, error) {
	match, err := matcher(q)
	if err != nil {
		return NotFound, err
	}
	if startRow < 0 {
		startRow = 0
	}
	for row := startRow; row < g.RowCount(); row++ {
		if match(cellText(g.CellAt(row, col))) {
			return row + rowOffset, nil
		}
	}
	return NotFound, nil
}
