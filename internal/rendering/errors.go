// Package rendering maps a CV aggregate to document markup. One pipeline
// serves every template; visual styles are data-driven descriptors.
package rendering

import "fmt"

// TemplateError represents an error executing the markup template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
