package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a missing record and a record owned by someone
// else; callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")

var (
	ErrEmailTaken    = errors.New("email is already in use")
	ErrWrongPassword = errors.New("current password is incorrect")
)

// ValidationError reports a malformed or missing input field. It is returned
// before any write is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
