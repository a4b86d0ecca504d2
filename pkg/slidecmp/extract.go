// Package slidecmp extracts visual structure from PPTX files and compares
// two extractions for rendering discrepancies.
package slidecmp

import (
	"archive/zip"
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/parser"
)

// Extract parses a pptx file into a DocumentData with a derived summary.
func Extract(path string) (*models.DocumentData, error) {
	slides, err := parser.ExtractSlides(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			err = fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, &ExtractError{File: path, Err: err}
	}

	return &models.DocumentData{
		File:    path,
		Slides:  slides,
		Summary: summarize(slides),
	}, nil
}

// summarize folds the slide list into document totals. It is a pure pass
// over already-built slides; extraction never mutates shared counters.
func summarize(slides []models.Slide) models.Summary {
	summary := models.Summary{
		TotalSlides: len(slides),
		ShapeTypes:  map[string]int{},
	}
	colors := map[string]struct{}{}
	fonts := map[string]struct{}{}

	for _, slide := range slides {
		summary.TotalShapes += slide.ShapeCount
		summary.TotalImages += slide.ImageCount
		for _, shape := range slide.Shapes {
			summary.ShapeTypes[shape.ShapeType]++
			if shape.FillColor != nil {
				colors[*shape.FillColor] = struct{}{}
			}
			if shape.FontFace != nil {
				fonts[*shape.FontFace] = struct{}{}
			}
		}
	}

	summary.ColorsUsed = sortedKeys(colors)
	summary.FontsUsed = sortedKeys(fonts)
	return summary
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
