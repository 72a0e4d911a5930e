//go:build amd64 && !noprefetch

package kernel

// prefetchSpan is a software prefetch hint: touching the byte at `at`
// nudges the hardware prefetcher to bring the surrounding cache line in
// before the verifier reads it a few instructions later. It has no
// semantic effect — the read result is discarded — and is purely a
// performance toggle (spec §6 hw_prefetch), disabled with the
// noprefetch build tag.
func prefetchSpan(span []byte, at int) {
	if at >= 0 && at < len(span) {
		_ = span[at]
	}
}
