package models

// MatchMode selects how anchor and keyword text is compared against cells.
type MatchMode string

const (
	// MatchExact compares whole cell text after trimming whitespace.
	MatchExact MatchMode = "exact"
	// MatchContains matches a literal substring (no regex semantics).
	MatchContains MatchMode = "contains"
	// MatchRegex matches the cell text against a regular expression.
	MatchRegex MatchMode = "regex"
)

// StartSpec locates a block's start row by searching a column for the nth
// occurrence of a text value and applying a row delta to the hit.
type StartSpec struct {
	// Column is the column letter scanned for the anchor (e.g. "A").
	Column string `json:"column" yaml:"column"`
	// Text is the anchor text searched for.
	Text string `json:"text" yaml:"text"`
	// Mode is the match mode (exact when empty).
	Mode MatchMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	// Occurrence is the 1-based hit index; negative counts from the end
	// (-1 is the last hit). Zero means 1.
	Occurrence int `json:"occurrence,omitempty" yaml:"occurrence,omitempty"`
	// RowDelta is added to the matched row to obtain the start row.
	RowDelta int `json:"row_delta,omitempty" yaml:"row_delta,omitempty"`
	// CaseInsensitive folds case for exact and contains matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// KeywordSpec locates a block's end row by scanning forward from the start
// row for a marker cell and applying a row offset to the hit.
type KeywordSpec struct {
	// Column is the column letter scanned for the keyword.
	Column string `json:"column" yaml:"column"`
	// Text is the keyword searched for.
	Text string `json:"text" yaml:"text"`
	// Mode is the match mode (exact when empty).
	Mode MatchMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	// RowOffset is added to the matched row; -1 means the row before the
	// keyword. An end row computed above the start row yields an empty
	// block, not an error.
	RowOffset int `json:"row_offset,omitempty" yaml:"row_offset,omitempty"`
	// CaseInsensitive folds case for exact and contains matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// EndSpec bounds the last row of an anchored block. Exactly one of Row or
// Keyword is set; a nil EndSpec on the block means the last grid row.
type EndSpec struct {
	// Row is a fixed 1-based end row (when > 0).
	Row int `json:"row,omitempty" yaml:"row,omitempty"`
	// Keyword terminates the block at a marker row.
	Keyword *KeywordSpec `json:"keyword,omitempty" yaml:"keyword,omitempty"`
}

// BlockSpec declares one data region. It is a closed union: either Range
// is set (fixed block) or Start is set (anchored block with an optional
// End bound and a fixed Columns span). The resolver rejects any other
// combination.
type BlockSpec struct {
	// Range is a fixed inclusive region in A1 notation ("A2:B6"; a single
	// cell yields a degenerate one-cell block).
	Range string `json:"range,omitempty" yaml:"range,omitempty"`
	// Start locates the first row by anchor search.
	Start *StartSpec `json:"start,omitempty" yaml:"start,omitempty"`
	// End bounds the last row of an anchored block; nil means the last
	// grid row.
	End *EndSpec `json:"end,omitempty" yaml:"end,omitempty"`
	// Columns is the fixed column span of an anchored block ("A:B", or a
	// single letter for one column).
	Columns string `json:"columns,omitempty" yaml:"columns,omitempty"`
	// Total is an optional single-row A1 range appended after the block's
	// data rows ("A7:B7").
	Total string `json:"total,omitempty" yaml:"total,omitempty"`
}

// Rule is the unit of declarative extraction: one header area plus one or
// more blocks on a named sheet. Blocks are concatenated strictly in the
// order declared here, never reordered by sheet position.
type Rule struct {
	// ID identifies the rule in results and error records.
	ID string `json:"id" yaml:"id"`
	// Sheet is the target sheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Header is the header area in A1 notation, possibly spanning
	// multiple rows ("A2:B2", "A1:B2").
	Header string `json:"header" yaml:"header"`
	// Blocks are the data regions, extracted in declaration order.
	Blocks []BlockSpec `json:"blocks" yaml:"blocks"`
	// StripEmptyRows removes rows whose every cell is blank from the
	// concatenated result.
	StripEmptyRows bool `json:"strip_empty_rows,omitempty" yaml:"strip_empty_rows,omitempty"`
	// HeaderJoin overrides the separator used to join multi-row headers
	// (engine default when empty).
	HeaderJoin string `json:"header_join,omitempty" yaml:"header_join,omitempty"`
}
