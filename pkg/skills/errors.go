package skills

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports the rule violations that made a skill name or
// description unacceptable. No filesystem mutation happens when validation
// fails.
type ValidationError struct {
	Field      string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid skill %s: %s", e.Field, strings.Join(e.Violations, "; "))
}

// NotFoundError is returned when edit or delete addresses a skill that does
// not exist for any registered agent in the requested scope.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill %q not found", e.Name)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
