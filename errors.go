package sigscan

import "github.com/coregx/sigscan/internal/pattern"

// ErrInvalidPattern is returned by Compile when the signature text is
// malformed. Use errors.Is to test for it; a failed Compile also returns a
// *ParseError carrying the offending text and offset.
var ErrInvalidPattern = pattern.ErrInvalidPattern

// ParseError describes exactly where and why Compile rejected a signature.
type ParseError = pattern.ParseError
