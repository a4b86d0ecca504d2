// Package models defines data structures for slide extraction and comparison.
package models

// Shape represents shape metadata including position, size, text, and styling.
// Positions and sizes are in inches. Optional fields are nil when the source
// XML does not carry the corresponding attribute or element.
type Shape struct {
	// SlideNum is the 1-based slide number owning the shape.
	SlideNum int `json:"slide_num"`
	// ShapeID is the non-visual shape id from the document.
	ShapeID string `json:"shape_id"`
	// ShapeName is the non-visual display name.
	ShapeName string `json:"shape_name"`
	// ShapeType is the preset geometry name, or "custom" when the shape has
	// no preset geometry element.
	ShapeType string `json:"shape_type"`
	// X is the left offset in inches.
	X float64 `json:"x"`
	// Y is the top offset in inches.
	Y float64 `json:"y"`
	// W is the width in inches.
	W float64 `json:"w"`
	// H is the height in inches.
	H float64 `json:"h"`
	// FillColor is "#RRGGBB", "scheme:<name>", a "gradient:"-prefixed color,
	// or the literal "none".
	FillColor *string `json:"fill_color"`
	// FillTransparency is the fill alpha as an integer percent (0-100).
	FillTransparency *int `json:"fill_transparency"`
	// LineColor is the outline color, same encoding as FillColor.
	LineColor *string `json:"line_color"`
	// LineWidth is the outline width in inches.
	LineWidth *float64 `json:"line_width"`
	// Rotation is the rotation angle in whole degrees.
	Rotation *int `json:"rotation"`
	// TextContent is the space-joined concatenation of all text runs.
	TextContent *string `json:"text_content"`
	// FontSize is the font size in points, taken from the last run seen.
	FontSize *float64 `json:"font_size"`
	// FontFace is the latin typeface name, taken from the last run seen.
	FontFace *string `json:"font_face"`
	// FontColor is the run color, taken from the last run seen.
	FontColor *string `json:"font_color"`
	// FontBold reports whether the last run carrying properties was bold.
	FontBold bool `json:"font_bold"`
}
