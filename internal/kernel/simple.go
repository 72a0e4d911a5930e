package kernel

import (
	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
	"github.com/coregx/sigscan/internal/verify"
)

// Simple runs Boyer-Moore-Horspool over span using c's precomputed shift
// table. Left-to-right scanning naturally returns the first (lowest-offset)
// match, so no explicit tie-break is needed.
func Simple(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	solid := c.SolidBytes
	l := len(solid)
	n := len(span)
	if l == 0 || n < l {
		return 0, false
	}

	last := solid[l-1]
	i := 0
	for i <= n-l {
		if polled(flag) {
			return 0, false
		}
		prefetchSpan(span, i)
		if span[i+l-1] == last && verify.SolidMatchAt(solid, span, i) {
			flag.Set()
			return i, true
		}
		i += c.HorspoolShift[span[i+l-1]]
	}
	return 0, false
}
