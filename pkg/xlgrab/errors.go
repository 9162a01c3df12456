package xlgrab

import (
	"errors"
	"fmt"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/resolver"
)

// ErrSheetNotFound indicates the named sheet does not exist in the
// workbook. Grid providers wrap it so the orchestrator can classify the
// failure as rule-level.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrorKind classifies an extraction failure.
type ErrorKind string

const (
	KindSheetNotFound       ErrorKind = "SHEET_NOT_FOUND"
	KindAnchorNotFound      ErrorKind = "ANCHOR_NOT_FOUND"
	KindKeywordNotFound     ErrorKind = "KEYWORD_NOT_FOUND"
	KindRangeOutOfBounds    ErrorKind = "RANGE_OUT_OF_BOUNDS"
	KindInvalidAddress      ErrorKind = "INVALID_ADDRESS"
	KindColumnCountMismatch ErrorKind = "COLUMN_COUNT_MISMATCH"
	// KindInvalidRule covers spec defects outside the address syntax,
	// such as an uncompilable regex or an unknown match mode.
	KindInvalidRule ErrorKind = "INVALID_RULE"
)

// ErrorRecord describes one isolated failure. Block is the 1-based index
// of the failed block spec, or 0 for a rule-level failure.
type ErrorRecord struct {
	RuleID  string    `json:"rule_id"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Block   int       `json:"block,omitempty"`
}

func (r ErrorRecord) String() string {
	if r.Block > 0 {
		return fmt.Sprintf("rule %q block %d: %s: %s", r.RuleID, r.Block, r.Kind, r.Message)
	}
	return fmt.Sprintf("rule %q: %s: %s", r.RuleID, r.Kind, r.Message)
}

// KindOf maps a lower-level failure to its ErrorKind.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrSheetNotFound):
		return KindSheetNotFound
	case errors.Is(err, resolver.ErrAnchorNotFound):
		return KindAnchorNotFound
	case errors.Is(err, resolver.ErrKeywordNotFound):
		return KindKeywordNotFound
	case errors.Is(err, resolver.ErrRangeOutOfBounds):
		return KindRangeOutOfBounds
	case errors.Is(err, resolver.ErrInvalidAddress):
		return KindInvalidAddress
	case errors.Is(err, resolver.ErrColumnCountMismatch):
		return KindColumnCountMismatch
	default:
		return KindInvalidRule
	}
}

// newErrorRecord converts an error crossing a rule or block boundary into
// its record form.
func newErrorRecord(ruleID string, block int, err error) ErrorRecord {
	return ErrorRecord{
		RuleID:  ruleID,
		Kind:    KindOf(err),
		Message: err.Error(),
		Block:   block,
	}
}
