// Package output serializes extraction reports for downstream consumers.
package output

import (
	"encoding/json"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// ToJSON serializes a batch report.
func ToJSON(rep *xlgrab.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}

// ResultToJSON serializes one extraction result as a list of
// column→value records, the shape consumed by row-oriented sinks.
func ResultToJSON(res *models.ExtractionResult, pretty bool) ([]byte, error) {
	records := res.Records()
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
