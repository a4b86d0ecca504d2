package models

// Issue kinds reported by the comparator.
const (
	IssueBackground        = "background"
	IssueShapeCount        = "shape_count"
	IssueShapeTypeMismatch = "shape_type_mismatch"
	IssueFillColorMismatch = "fill_color_mismatch"
)

// Issue describes a single discrepancy between the two documents.
// Ours and Zai hold the compared values; their concrete type depends on the
// issue kind (nil, string, or int).
type Issue struct {
	// Type is one of the Issue* constants.
	Type string `json:"type"`
	// Position labels the first document's shape position for per-shape
	// issues, e.g. "(1.5, 2)".
	Position string `json:"position,omitempty"`
	// Shape is the first document's shape display name, when relevant.
	Shape string `json:"shape,omitempty"`
	// Ours is the value observed in the first document.
	Ours any `json:"ours"`
	// Zai is the value observed in the second document.
	Zai any `json:"zai"`
}

// SlideDiff is the comparison result for one slide pair.
type SlideDiff struct {
	// SlideNum is the first document's slide number.
	SlideNum int `json:"slide_num"`
	// Issues lists detected discrepancies; empty (never nil) when the pair
	// is clean.
	Issues []Issue `json:"issues"`
	// ShapeDiff is the signed shape count delta (ours minus theirs).
	ShapeDiff int `json:"shape_diff"`
}
