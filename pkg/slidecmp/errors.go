package slidecmp

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid pptx archive.
var ErrInvalidFormat = errors.New("invalid pptx format")

// ExtractError represents a fatal error during document extraction. The
// whole extraction fails on the first archive or XML error; there is no
// partial-result recovery.
type ExtractError struct {
	File string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.File, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
