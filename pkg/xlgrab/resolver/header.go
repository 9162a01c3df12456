package resolver

import (
	"fmt"
	"strings"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// FlattenHeader converts a header area into one flat name per column.
// Single-row headers use the cell text as-is (trimmed). Multi-row headers
// join the rows top to bottom with the separator, skipping blank segments
// and collapsing consecutive duplicate segments left by merged header
// cells. Duplicate flat names are disambiguated with an incrementing
// suffix in order of first appearance ("A", "A_1", "A_2").
func FlattenHeader(g models.Grid, r Range, join string) []string {
	names := make([]string, 0, r.Cols())
	for col := r.StartCol; col <= r.EndCol; col++ {
		var segments []string
		for row := r.StartRow; row <= r.EndRow; row++ {
			text := strings.TrimSpace(cellText(g.CellAt(row, col)))
			if text == "" {
				continue
			}
			if len(segments) > 0 && segments[len(segments)-1] == text {
				continue
			}
			segments = append(segments, text)
		}
		names = append(names, strings.Join(segments, join))
	}
	return DedupNames(names)
}

// DedupNames disambiguates duplicate column names by suffixing later
// occurrences with their running count. Blank names become numbered
// placeholders ("_1", "_2", ...).
func DedupNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			seen["_"]++
			out = append(out, fmt.Sprintf("_%d", seen["_"]))
			continue
		}
		count := seen[name]
		seen[name] = count + 1
		if count == 0 {
			out = append(out, name)
			continue
		}
		out = append(out, fmt.Sprintf("%s_%d", name, count))
	}
	return out
}
