package naming

import "strings"

// Parse converts one raw name line into a Name.
//
// Validation runs in a fixed order: blank input fails with ErrEmptyInput
// before tokenizing, a single token fails with ErrMissingGivenName, and more
// than MaxGivenNames+1 tokens fail with ErrTooManyGivenNames. Every failure is
// a *ParseError carrying raw unchanged.
func Parse(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, &ParseError{Input: raw, Err: ErrEmptyInput}
	}

	tokens := strings.Fields(trimmed)
	switch {
	case len(tokens) == 1:
		return Name{}, &ParseError{Input: raw, Err: ErrMissingGivenName}
	case len(tokens) > MaxGivenNames+1:
		return Name{}, &ParseError{Input: raw, Err: ErrTooManyGivenNames}
	}

	last := len(tokens) - 1
	n := Name{surname: tokens[last], count: last}
	copy(n.given[:], tokens[:last])
	return n, nil
}
