package xlgrab

import (
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/resolver"
)

// GridProvider maps sheet names to grids. Implementations report a
// missing sheet with an error wrapping ErrSheetNotFound.
type GridProvider interface {
	Grid(sheet string) (models.Grid, error)
}

// Report aggregates a batch run: one result per succeeded rule, in input
// order, plus every rule- and block-level error in the order encountered.
type Report struct {
	Results []models.ExtractionResult `json:"results"`
	Errors  []ErrorRecord             `json:"errors"`
}

// Extract runs every rule against the provider's grids. Each rule is a
// fully isolated attempt: failures become ErrorRecords and the batch
// moves on to the next rule. The caller always receives both the
// (possibly partial) result set and the complete error list.
func Extract(p GridProvider, rules []models.Rule, opts Options) *Report {
	rep := &Report{}
	for _, rule := range rules {
		result, errs, ok := runRule(p, rule, opts)
		rep.Errors = append(rep.Errors, errs...)
		if ok {
			rep.Results = append(rep.Results, result)
		}
	}
	return rep
}

// runRule resolves, extracts, and flattens one rule. The returned records
// cover both rule-level and block-level failures; ok reports whether a
// result should be emitted.
func runRule(p GridProvider, rule models.Rule, opts Options) (models.ExtractionResult, []ErrorRecord, bool) {
	var errs []ErrorRecord
	none := models.ExtractionResult{}

	grid, err := p.Grid(rule.Sheet)
	if err != nil {
		return none, append(errs, newErrorRecord(rule.ID, 0, err)), false
	}

	clip := opts.ShouldClip()

	headerRange, err := resolver.ParseRange(rule.Header)
	if err == nil {
		headerRange, err = resolver.BoundRange(headerRange, grid, clip)
	}
	if err != nil {
		return none, append(errs, newErrorRecord(rule.ID, 0, err)), false
	}

	// Blocks resolve and later concatenate strictly in declaration
	// order; a failed block is skipped, the rest of the rule continues.
	var blocks []resolver.ResolvedBlock
	for i, spec := range rule.Blocks {
		block, err := resolver.ResolveBlock(grid, spec, clip)
		if err != nil {
			errs = append(errs, newErrorRecord(rule.ID, i+1, err))
			continue
		}
		blocks = append(blocks, block)
	}

	columns := resolver.FlattenHeader(grid, headerRange, opts.joinFor(rule.HeaderJoin))

	if len(blocks) == 0 {
		if opts.EmitEmptyResults {
			return models.ExtractionResult{RuleID: rule.ID, Columns: columns, Rows: nil}, errs, true
		}
		return none, errs, false
	}

	rows, err := resolver.ExtractBlocks(grid, blocks)
	if err != nil {
		return none, append(errs, newErrorRecord(rule.ID, 0, err)), false
	}
	if rule.StripEmptyRows {
		// Runs across the whole rule's combined rows, so a blank row
		// sitting exactly on a block boundary is still removed.
		rows = resolver.StripEmptyRows(rows)
	}

	return models.ExtractionResult{RuleID: rule.ID, Columns: columns, Rows: rows}, errs, true
}
