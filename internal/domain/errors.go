package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrItemNotFound indicates no catalog item has the requested ID
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrValidation indicates an item field failed validation
	ErrValidation = errors.New("validation failed")

	// ErrUnknownKind indicates a record carries an unrecognised kind tag
	ErrUnknownKind = errors.New("unknown item kind")
)

// ValidationError reports which field of an item was rejected
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func emptyTitleError() error {
	return &ValidationError{Field: "title", Message: "must not be empty"}
}
