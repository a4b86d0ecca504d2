// Package output serializes and renders comparison results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

// Report is the full JSON payload: both documents plus the untruncated diff
// list.
type Report struct {
	Ours  *models.DocumentData `json:"ours"`
	Zai   *models.DocumentData `json:"zai"`
	Diffs []models.SlideDiff   `json:"diffs"`
}

// ToJSON serializes a comparison report.
func ToJSON(ours, theirs *models.DocumentData, diffs []models.SlideDiff, pretty bool) ([]byte, error) {
	report := Report{
		Ours:  ours,
		Zai:   theirs,
		Diffs: diffs,
	}
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
