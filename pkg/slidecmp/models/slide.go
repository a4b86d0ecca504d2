package models

// Slide represents extracted data for a single slide.
type Slide struct {
	// SlideNum is the slide number embedded in the archive entry name.
	SlideNum int `json:"slide_num"`
	// BackgroundColor is the resolved slide background color, if any.
	BackgroundColor *string `json:"background_color"`
	// ShapeCount is the number of extracted shapes.
	ShapeCount int `json:"shape_count"`
	// TextCount is the number of shapes carrying text content.
	TextCount int `json:"text_count"`
	// ImageCount is the number of picture elements anywhere in the shape
	// tree, including inside groups.
	ImageCount int `json:"image_count"`
	// Shapes contains the extracted shapes in document order.
	Shapes []Shape `json:"shapes"`
}
