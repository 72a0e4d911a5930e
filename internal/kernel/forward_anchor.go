package kernel

import (
	"bytes"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
	"github.com/coregx/sigscan/internal/verify"
)

// ForwardAnchor scans forward for c.FirstByte via a fast byte-seek
// primitive; at each hit it bounds-checks and runs the wildcard-aware
// verifier. Returns the first (lowest-offset) success.
func ForwardAnchor(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	pat := c.Pattern
	l := len(pat)
	n := len(span)
	if l == 0 || n < l {
		return 0, false
	}

	pos := 0
	for pos < n {
		hit := bytes.IndexByte(span[pos:], c.FirstByte)
		if hit < 0 {
			return 0, false
		}
		p := pos + hit
		if polled(flag) {
			return 0, false
		}
		if n-p < l {
			return 0, false
		}
		prefetchSpan(span, p)
		if verify.FullMatchAt(pat, span, p) {
			flag.Set()
			return p, true
		}
		pos = p + 1
	}
	return 0, false
}
