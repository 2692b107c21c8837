package validation

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every *Error via errors.Is.
var ErrInvalid = errors.New("invalid input")

// Error reports a value rejected at construction time.
type Error struct {
	Field  string
	Value  any
	Reason string
}

func New(field string, value any, reason string) *Error {
	return &Error{Field: field, Value: value, Reason: reason}
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}
