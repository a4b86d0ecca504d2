package parser

import (
	"testing"
)

func TestEMUToInches(t *testing.T) {
	tests := []struct {
		emu      int64
		expected float64
	}{
		{0, 0},
		{914400, 1.0},
		{457200, 0.5},
		{1828800, 2.0},
		{91440, 0.1},
		{25400, 0.0278},  // 1/36 inch rounds up at the 4th decimal
		{304800, 0.3333}, // 1/3 inch
		{12700, 0.0139},  // 1 point
	}

	for _, tt := range tests {
		result := EMUToInches(tt.emu)
		if result != tt.expected {
			t.Errorf("EMUToInches(%d) = %v, expected %v", tt.emu, result, tt.expected)
		}
	}
}

func TestEMUToPixels(t *testing.T) {
	tests := []struct {
		emu      int64
		expected float64
	}{
		{0, 0},
		{914400, 96},
		{457200, 48},
		{9525, 1},
		{304800, 32},
		{12700, 1.33},
	}

	for _, tt := range tests {
		result := EMUToPixels(tt.emu)
		if result != tt.expected {
			t.Errorf("EMUToPixels(%d) = %v, expected %v", tt.emu, result, tt.expected)
		}
	}
}
