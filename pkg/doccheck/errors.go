package doccheck

import (
	"errors"
	"fmt"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook or document.
var ErrInvalidFormat = errors.New("invalid file format")

// ErrInvalidRange indicates a malformed A1 range string.
var ErrInvalidRange = parser.ErrInvalidRange

// ErrSheetNotFound indicates the named sheet is missing from a workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// SourceError represents a failure to open or read one input.
type SourceError struct {
	Path      string
	SheetName string // empty for non-sheet inputs
	Err       error
}

func (e *SourceError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("source %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source %q sheet %q: %v", e.Path, e.SheetName, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, sheetName string, err error) *SourceError {
	return &SourceError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}
