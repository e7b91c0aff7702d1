package purpose

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrConflictingSources indicates both an explicit predicate and a
	// mode/filename specification were supplied.
	ErrConflictingSources = errors.New("conflicting predicate sources: explicit predicate and mode/filename specs are mutually exclusive")

	// ErrNoPredicateSource indicates neither an explicit predicate nor
	// any mode/filename specification was supplied.
	ErrNoPredicateSource = errors.New("no predicate source: supply modes, filenames, or an explicit predicate")
)

// SpecError reports an invalid entry in a mode or filename specification.
type SpecError struct {
	// Kind is the specification kind ("mode" or "filename").
	Kind string

	// Entry is the offending specification entry.
	Entry string

	// Err is the underlying error (usually a regexp compile error).
	Err error
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid %s spec %q: %v", e.Kind, e.Entry, e.Err)
}

// Unwrap returns the underlying error.
func (e *SpecError) Unwrap() error {
	return e.Err
}
