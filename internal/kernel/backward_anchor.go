package kernel

import (
	"bytes"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
	"github.com/coregx/sigscan/internal/verify"
)

// BackwardAnchor scans forward for c.LastByte; each hit at position p
// implies a candidate start at p-(L-1). Candidates preceding the span, or
// leaving fewer than L bytes, are rejected without verification.
func BackwardAnchor(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	pat := c.Pattern
	l := len(pat)
	n := len(span)
	if l == 0 || n < l {
		return 0, false
	}
	lastOffset := l - 1

	pos := 0
	for pos < n {
		hit := bytes.IndexByte(span[pos:], c.LastByte)
		if hit < 0 {
			return 0, false
		}
		p := pos + hit
		if polled(flag) {
			return 0, false
		}
		start := p - lastOffset
		if start < 0 || n-start < l {
			pos = p + 1
			continue
		}
		prefetchSpan(span, start)
		if verify.FullMatchAt(pat, span, start) {
			flag.Set()
			return start, true
		}
		pos = p + 1
	}
	return 0, false
}
