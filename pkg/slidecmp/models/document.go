package models

// Summary aggregates document-level totals derived from the slide list.
type Summary struct {
	// TotalSlides is the number of slide entries found in the archive.
	TotalSlides int `json:"total_slides"`
	// TotalShapes is the number of shapes across all slides.
	TotalShapes int `json:"total_shapes"`
	// TotalImages is the number of picture elements across all slides.
	TotalImages int `json:"total_images"`
	// ShapeTypes maps preset geometry name to occurrence count.
	ShapeTypes map[string]int `json:"shape_types"`
	// ColorsUsed is the sorted set of distinct fill colors.
	ColorsUsed []string `json:"colors_used"`
	// FontsUsed is the sorted set of distinct font faces.
	FontsUsed []string `json:"fonts_used"`
}

// DocumentData is the extraction result for one presentation file.
type DocumentData struct {
	// File is the source file path as given on the command line.
	File string `json:"file"`
	// Slides contains per-slide data in ascending slide number order.
	Slides []Slide `json:"slides"`
	// Summary is derived from Slides by a pure aggregation pass.
	Summary Summary `json:"summary"`
}
