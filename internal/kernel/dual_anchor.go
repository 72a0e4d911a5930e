package kernel

import (
	"bytes"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
	"github.com/coregx/sigscan/internal/verify"
)

// DualAnchor scans forward for c.FirstByte; at each hit it cheaply rejects
// on the tail byte before running the full wildcard-aware verify. This is
// the strategy for patterns with solid bytes at both ends and at least one
// wildcard in the middle.
func DualAnchor(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	pat := c.Pattern
	l := len(pat)
	n := len(span)
	if l == 0 || n < l {
		return 0, false
	}
	lastOffset := l - 1

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
		if span[p+lastOffset] == c.LastByte && verify.FullMatchAt(pat, span, p) {
			flag.Set()
			return p, true
		}
		pos = p + 1
	}
	return 0, false
}
