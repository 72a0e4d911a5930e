//go:build (amd64 || arm64) && !nosimd

package kernel

import (
	"encoding/binary"
	"math/bits"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/pattern"
	"github.com/coregx/sigscan/internal/rarity"
	"github.com/coregx/sigscan/internal/strategy"
	"github.com/coregx/sigscan/internal/verify"
)

// SWAR ("SIMD within a register") byte-equality mask, the classic
// bit-twiddling trick for testing eight lanes of a uint64 against a
// broadcast byte in O(1) instead of a byte-by-byte loop. This is the
// portable substitute for real vector compare instructions: unlike the
// teacher's memchr_amd64.s/teddy_ssse3_amd64.s, this needs no per-arch
// assembly file, so amd64 and arm64 share this algorithm (see DESIGN.md);
// only the lane width varies, gated by the arch-specific hasWideLanes var
// in dynamic_anchor_simd_amd64.go / dynamic_anchor_simd_arm64.go.
const (
	loBits64 = 0x0101010101010101
	hiBits64 = 0x8080808080808080
)

func broadcast64(b byte) uint64 { return loBits64 * uint64(b) }

// eqMask returns a word where bit (8*lane+7) is set for every one of the
// eight byte lanes of v equal to the byte broadcast in target. This is the
// well-known exact zero-byte detector applied to v^target.
func eqMask(v, target uint64) uint64 {
	x := v ^ target
	return (x - loBits64) &^ x & hiBits64
}

// DynamicAnchorScan is the SIMD-style dynamic-anchor kernel (spec §4.4
// DynamicAnchor/SIMD). It samples the region for byte rarity, picks the
// cheapest-looking anchor among the pattern's first 16 elements, sweeps the
// span a lane-width at a time comparing every 8-byte word against the
// anchor broadcast, and verifies hits with a masked template compare. The
// lane width is 32 bytes (four words) when the CPU advertises the wider
// vector unit hasWideLanes checks for, 16 bytes otherwise.
func DynamicAnchorScan(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool) {
	pat := c.Pattern
	l := len(pat)
	n := len(span)
	if l == 0 || n < l {
		return 0, false
	}

	freq := rarity.Histogram(span)
	anchor, ok := rarity.SelectAnchor(pat, freq)
	if !ok {
		// No concrete byte in the first 16 elements. Rather than seed a
		// scan with an undefined head byte (the source implementation's
		// stale first_byte_ for a DynamicAnchor-strategy pattern), anchor
		// on the first concrete byte anywhere in the pattern — the same
		// algorithm the scalar kernel already uses, and correctly
		// "absent" when the pattern is all wildcards.
		return dynamicAnchorScalar(c, span, flag)
	}

	pat16, mask16 := rarity.Template(pat)
	bcast := broadcast64(anchor.Byte)

	words := 2
	if hasWideLanes {
		words = 4
	}
	step := words * 8
	fastEnd := n - step
	tailEnd := n - l

	pos := 0
	for pos <= fastEnd {
		if polled(flag) {
			return 0, false
		}
		prefetchSpan(span, pos+64)

		for w := 0; w < words; w++ {
			off := pos + w*8
			word := binary.LittleEndian.Uint64(span[off : off+8])
			mask := eqMask(word, bcast)
			for mask != 0 {
				lane := bits.TrailingZeros64(mask) >> 3
				mask &= mask - 1
				if start, ok := verifyDynamicCandidate(pat, span, off+lane, anchor.Offset, pat16, mask16); ok {
					flag.Set()
					return start, true
				}
			}
		}
		pos += step
	}

	// The bulk loop only ever looked for the anchor byte at positions
	// < pos, so a candidate whose start is in [pos-anchor.Offset, pos) has
	// an anchor position >= pos that was never scanned. Re-verify from
	// there instead of from pos, or matches straddling the bulk/tail
	// boundary (or, under the chunked dispatcher, a chunk boundary) are
	// silently missed.
	tailStart := pos - anchor.Offset
	if tailStart < 0 {
		tailStart = 0
	}
	for p := tailStart; p <= tailEnd; p++ {
		if polled(flag) {
			return 0, false
		}
		if verify.FullMatchAt(pat, span, p) {
			flag.Set()
			return p, true
		}
	}
	return 0, false
}

// verifyDynamicCandidate turns an anchor-byte hit at hitPos into a
// candidate start and verifies it, preferring the masked 16-byte template
// compare when 16 bytes are available and falling back to the general
// wildcard verifier otherwise (spec §4.4 step 4, bounds rejection by L).
func verifyDynamicCandidate(pat pattern.Pattern, span []byte, hitPos, anchorOffset int, pat16, mask16 [16]byte) (int, bool) {
	l := len(pat)
	start := hitPos - anchorOffset
	if start < 0 || start+l > len(span) {
		return 0, false
	}
	if start+16 > len(span) {
		if verify.FullMatchAt(pat, span, start) {
			return start, true
		}
		return 0, false
	}
	limit := l
	if limit > 16 {
		limit = 16
	}
	for i := 0; i < limit; i++ {
		if span[start+i]&mask16[i] != pat16[i] {
			return 0, false
		}
	}
	if l <= 16 {
		return start, true
	}
	if verify.FullMatchAt(pat, span, start) {
		return start, true
	}
	return 0, false
}
