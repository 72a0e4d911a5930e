// Package verify implements the wildcard-aware match check shared by every
// scan kernel: given a candidate start offset, confirm the full pattern
// matches, honoring wildcards.
package verify

import "github.com/coregx/sigscan/internal/pattern"

// FullMatchAt reports whether pat matches span starting at offset, treating
// wildcard elements as matching any byte.
//
// Precondition: offset+len(pat) <= len(span). Callers are expected to have
// already bounds-checked; FullMatchAt itself re-checks defensively and
// returns false rather than panicking on a bad offset.
func FullMatchAt(pat pattern.Pattern, span []byte, offset int) bool {
	if offset < 0 || offset+len(pat) > len(span) {
		return false
	}
	for i, e := range pat {
		if !e.Wildcard && e.Value != span[offset+i] {
			return false
		}
	}
	return true
}

// SolidMatchAt is the fast path for wildcard-free patterns: a straight
// byte-for-byte comparison, used by the Simple (BMH) kernel once the
// last-byte heuristic has already agreed.
func SolidMatchAt(solid []byte, span []byte, offset int) bool {
	if offset < 0 || offset+len(solid) > len(span) {
		return false
	}
	for i, b := range solid {
		if span[offset+i] != b {
			return false
		}
	}
	return true
}
