//go:build (!amd64 && !arm64) || nosimd

package kernel

import (
	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
)

// DynamicAnchorScan is the scalar dynamic-anchor kernel, used when the
// simd feature is unavailable (non-amd64/arm64 targets, or built with
// nosimd). It anchors on the pattern's first concrete byte and verifies
// backward-computed candidate starts. An all-wildcard pattern has no
// anchor and always reports no match.
func DynamicAnchorScan(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	return dynamicAnchorScalar(c, span, flag)
}
