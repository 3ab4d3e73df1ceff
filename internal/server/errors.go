// Package server provides the HTTP API the CV editor frontend talks to.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/export"
)

// ErrUnknownSection indicates a request named a section the CV does not have.
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown CV section: %s", e.Section)
}

// ErrUnknownTemplate indicates a template id outside the catalog.
type ErrUnknownTemplate struct {
	Template string
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown template: %s", e.Template)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unknownSection *ErrUnknownSection
	var unknownTemplate *ErrUnknownTemplate
	var validation *ErrValidation
	var photo *editor.PhotoError
	var pdf *export.PDFError

	switch {
	case errors.As(err, &unknownSection), errors.As(err, &unknownTemplate):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &photo):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict
	case errors.Is(err, export.ErrNoName):
		return http.StatusUnprocessableEntity
	case errors.As(err, &pdf):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
