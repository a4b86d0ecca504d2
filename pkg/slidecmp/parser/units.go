// Package parser provides PPTX slide XML parsing utilities.
package parser

import "math"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
// DrawingML stores every coordinate and length in EMU.
const EMUPerInch = 914400

// EMUToInches converts EMU to inches rounded to 4 decimal places.
func EMUToInches(emu int64) float64 {
	return math.Round(float64(emu)/EMUPerInch*10000) / 10000
}

// EMUToPixels converts EMU to pixels at 96 DPI rounded to 2 decimal places.
func EMUToPixels(emu int64) float64 {
	return math.Round(float64(emu)/EMUPerInch*96*100) / 100
}
