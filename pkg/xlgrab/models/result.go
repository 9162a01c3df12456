package models

// ExtractionResult holds the flattened output for one successful rule:
// an ordered column name list and the concatenated data rows.
type ExtractionResult struct {
	// RuleID is the id of the rule that produced this result.
	RuleID string `json:"rule_id"`
	// Columns are the flattened, deduplicated column names.
	Columns []string `json:"columns"`
	// Rows are the extracted data rows in block declaration order.
	Rows [][]any `json:"rows"`
}

// Records converts the result into an ordered list of column→value maps,
// one per row. Extra cells beyond the column list are dropped; missing
// cells are absent from the map.
func (r *ExtractionResult) Records() []map[string]any {
	records := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		rec := make(map[string]any, len(r.Columns))
		for i, name := range r.Columns {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}
