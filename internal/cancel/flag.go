// Package cancel provides the flat cancellation flag shared between the
// parallel dispatcher and the kernels it fans out across worker chunks.
//
// There is deliberately no callback and no channel: once a match makes
// further work pointless, the flag is flipped and every in-flight kernel
// invocation watching it notices at its next poll point and gives up early. The
// flag is advisory — setting it never retracts a result already in
// flight, it only stops new work from starting.
package cancel

import "sync/atomic"

// Flag is a shared, one-way boolean: it starts false and is set at most
// once meaningfully (further sets are idempotent). It is never reset.
type Flag struct {
	set atomic.Bool
}

// New returns a fresh, unset Flag.
func New() *Flag { return &Flag{} }

// IsSet reports whether some worker has already produced a match.
func (f *Flag) IsSet() bool {
	if f == nil {
		return false
	}
	return f.set.Load()
}

// Set marks the flag. Safe to call from multiple goroutines.
func (f *Flag) Set() {
	if f == nil {
		return
	}
	f.set.Store(true)
}
