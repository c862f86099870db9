package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown output or input format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Extraction Errors.

	// ErrNoMatch indicates a rule pattern did not match. It is not a
	// failure: the rule's fields are simply omitted.
	ErrNoMatch = errors.New("pattern did not match")

	// ErrPartialDerivation indicates a rule matched but one of its
	// sub-transforms failed, so the whole field group is omitted.
	ErrPartialDerivation = errors.New("partial derivation")

	// ErrUnreadableDocument indicates a document could not be read or decoded.
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrMalformedTable indicates a delimited table is structurally broken.
	// This is the only condition that aborts loading a table.
	ErrMalformedTable = errors.New("malformed table")

	// ErrSourceClosed indicates the document source has been closed.
	ErrSourceClosed = errors.New("source closed")
)

// FieldError reports a rule group that matched but could not be derived.
type FieldError struct {
	Rule   string
	Fields []string
	Err    error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.Rule, e.Err)
}

// Unwrap returns ErrPartialDerivation so callers can classify with errors.Is,
// followed by the underlying cause.
func (e *FieldError) Unwrap() []error {
	return []error{ErrPartialDerivation, e.Err}
}

// ReadError reports a document that was skipped.
type ReadError struct {
	URI string
	Err error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.URI, e.Err)
}

// Unwrap returns ErrUnreadableDocument and the underlying cause.
func (e *ReadError) Unwrap() []error {
	return []error{ErrUnreadableDocument, e.Err}
}

// TableError reports a malformed delimited table.
type TableError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *TableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns ErrMalformedTable and the underlying cause.
func (e *TableError) Unwrap() []error {
	return []error{ErrMalformedTable, e.Err}
}
