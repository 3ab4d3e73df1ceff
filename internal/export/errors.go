package export

import (
	"errors"
	"fmt"
)

// ErrExportInFlight is returned when a PDF export is requested while another
// one is still running. Only one export runs at a time.
var ErrExportInFlight = errors.New("a PDF export is already in progress")

// ErrNoName is returned when an export is requested for a CV with no full
// name; the document would have no usable identity or filename.
var ErrNoName = errors.New("cannot export a CV without a full name")

// PDFError represents a failure in the headless-browser print pipeline.
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF export failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF export failed: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}
