package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the aggregate against its struct tags: percentage range,
// category/proficiency enums, email shape. The editor only ever writes
// enumerated values, so a failure here points at hand-edited or imported data.
func Validate(cv CVData) error {
	err := validate.Struct(cv)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("cv validation failed: %s", strings.Join(msgs, "; "))
}
