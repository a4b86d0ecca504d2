package slidecmp

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

// matchThreshold is the maximum Manhattan distance in inches for two shapes
// to be treated as counterparts.
const matchThreshold = 0.5

// shapeCountTolerance is the absolute shape count delta treated as noise.
const shapeCountTolerance = 2

// Compare computes per-slide differences between two extracted documents.
// Slides are compared pairwise up to the shorter document; trailing slides
// in the longer one are ignored. Compare(a, b) is not Compare(b, a)
// reversed: the shape count delta is signed as ours minus theirs.
func Compare(ours, theirs *models.DocumentData) []models.SlideDiff {
	n := len(ours.Slides)
	if len(theirs.Slides) < n {
		n = len(theirs.Slides)
	}

	diffs := make([]models.SlideDiff, 0, n)
	for i := 0; i < n; i++ {
		diffs = append(diffs, compareSlides(ours.Slides[i], theirs.Slides[i]))
	}
	return diffs
}

func compareSlides(ours, theirs models.Slide) models.SlideDiff {
	diff := models.SlideDiff{
		SlideNum:  ours.SlideNum,
		Issues:    []models.Issue{},
		ShapeDiff: ours.ShapeCount - theirs.ShapeCount,
	}

	if !equalOptional(ours.BackgroundColor, theirs.BackgroundColor) {
		diff.Issues = append(diff.Issues, models.Issue{
			Type: models.IssueBackground,
			Ours: optionalValue(ours.BackgroundColor),
			Zai:  optionalValue(theirs.BackgroundColor),
		})
	}

	// Deltas of 1-2 shapes are noise, not reported.
	if abs(diff.ShapeDiff) > shapeCountTolerance {
		diff.Issues = append(diff.Issues, models.Issue{
			Type: models.IssueShapeCount,
			Ours: ours.ShapeCount,
			Zai:  theirs.ShapeCount,
		})
	}

	for _, shape := range ours.Shapes {
		match, dist := closestShape(shape, theirs.Shapes)
		if match == nil || dist >= matchThreshold {
			continue
		}

		position := fmt.Sprintf("(%g, %g)", shape.X, shape.Y)

		if shape.ShapeType != match.ShapeType {
			diff.Issues = append(diff.Issues, models.Issue{
				Type:     models.IssueShapeTypeMismatch,
				Position: position,
				Ours:     shape.ShapeType,
				Zai:      match.ShapeType,
			})
		}

		if shape.FillColor != nil && match.FillColor != nil &&
			!strings.EqualFold(*shape.FillColor, *match.FillColor) {
			diff.Issues = append(diff.Issues, models.Issue{
				Type:     models.IssueFillColorMismatch,
				Position: position,
				Shape:    shape.ShapeName,
				Ours:     *shape.FillColor,
				Zai:      *match.FillColor,
			})
		}
	}

	return diff
}

// closestShape finds the candidate minimizing Manhattan distance to shape.
// The scan is stable: ties keep the earliest candidate.
func closestShape(shape models.Shape, candidates []models.Shape) (*models.Shape, float64) {
	var best *models.Shape
	bestDist := math.Inf(1)
	for i := range candidates {
		dist := math.Abs(shape.X-candidates[i].X) + math.Abs(shape.Y-candidates[i].Y)
		if dist < bestDist {
			bestDist = dist
			best = &candidates[i]
		}
	}
	return best, bestDist
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// optionalValue unwraps an optional string for issue reporting; unset stays
// null in JSON output.
func optionalValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
