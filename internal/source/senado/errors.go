package senado

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("value not found")
	ErrStructuralMismatch   = errors.New("structural mismatch")
	ErrRequiredFieldMissing = errors.New("required field missing")
)

// ParseError reports why a detail page could not be turned into a record.
// Kind is ErrStructuralMismatch or ErrRequiredFieldMissing.
type ParseError struct {
	Kind  error
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Field, e.Err)
}

func (e *ParseError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func structuralMismatch(field string, err error) *ParseError {
	return &ParseError{Kind: ErrStructuralMismatch, Field: field, Err: err}
}

func requiredFieldMissing(field string, err error) *ParseError {
	return &ParseError{Kind: ErrRequiredFieldMissing, Field: field, Err: err}
}
