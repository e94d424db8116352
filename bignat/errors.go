package bignat

import "errors"

// Sentinel errors for bignat construction. Callers should branch on these
// with errors.Is, never by comparing error strings.
var (
	// ErrNegative indicates a construction encountered a negative value
	// where bignat requires a non-negative one.
	ErrNegative = errors.New("bignat: negative value")

	// ErrSyntax indicates FromString received text that does not parse as
	// a base-10 integer.
	ErrSyntax = errors.New("bignat: invalid integer syntax")
)
