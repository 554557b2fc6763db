package naming

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a raw name was rejected. A [*ParseError]
// wraps exactly one of them; match with errors.Is.
var (
	ErrEmptyInput        = errors.New("full name cannot be empty")
	ErrMissingGivenName  = errors.New("given name(s) not provided, a name must have between 1 and 3 given names")
	ErrTooManyGivenNames = errors.New("more than 3 given names")
)

// ErrNilCollection is returned by [Sort] when it is handed a nil slice.
// An empty, non-nil slice is valid input.
var ErrNilCollection = errors.New("names collection is nil")

// ParseError reports a raw name that could not be parsed. Input is the
// string exactly as it was passed to [Parse].
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid name %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
