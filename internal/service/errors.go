package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an id-based lookup matches no row
	ErrNotFound = errors.New("record not found")
	// ErrRateLimited is returned when a client exceeds the submission window
	ErrRateLimited = errors.New("rate limited")
)

// FieldError describes one rejected input field with its localized message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors itemizes every rejected field of a request. Validation
// runs before any persistence attempt, so a non-empty result means nothing
// was written.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add appends a field error and returns the extended list
func (v ValidationErrors) add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Message: message})
}

// orNil converts an empty list to a nil error
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
