package scheduling

import (
	"errors"
	"fmt"
)

// ErrDateInPast is returned when a slot query targets a date strictly
// before today. No past-date slots are ever returned.
var ErrDateInPast = errors.New("date is in the past")

// ValidationError is a field-level rejection of an authoring or query
// request. Nothing is persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
