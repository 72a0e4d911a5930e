// Package rarity implements the region-rarity sampling and anchor selection
// used by the SIMD dynamic-anchor kernel (spec §4.4 step 1-3).
//
// This plays the same role as the teacher's simd.ByteFrequencies /
// simd.SelectRareBytes pair, but the frequency table is not a static
// English-text corpus — it is sampled from the region actually being
// searched, since a signature scanner's haystack is arbitrary binary
// memory, not text, and a fixed corpus table would be a poor predictor of
// its byte distribution.
package rarity

import "github.com/coregx/sigscan/internal/pattern"

const sampleStride = 4096

// Histogram builds a 256-entry byte-frequency estimate over region by
// sampling one byte every sampleStride bytes (or every byte, if region is
// smaller than one stride).
func Histogram(region []byte) [256]uint32 {
	var freq [256]uint32
	if len(region) < sampleStride {
		for _, b := range region {
			freq[b]++
		}
		return freq
	}
	for i := 0; i < len(region); i += sampleStride {
		freq[region[i]]++
	}
	return freq
}

// Anchor describes the concrete pattern element chosen to seed the SIMD
// dynamic-anchor scan.
type Anchor struct {
	Byte   byte
	Offset int
}

// SelectAnchor scans the first min(len(pat), 16) elements of pat, scores
// each concrete byte as freq[b] + 2*offset, and returns the element with
// the lowest score — ties broken toward the smallest offset (spec §4.4
// step 2; the 2*offset penalty prefers anchors near the start so that
// candidate starts, computed as hit-position minus offset, rarely land
// before the span origin).
//
// Returns ok=false if the first 16 elements are all wildcards.
func SelectAnchor(pat pattern.Pattern, freq [256]uint32) (a Anchor, ok bool) {
	limit := len(pat)
	if limit > 16 {
		limit = 16
	}
	best := uint64(1<<64 - 1)
	for i := 0; i < limit; i++ {
		e := pat[i]
		if e.Wildcard {
			continue
		}
		score := uint64(freq[e.Value]) + 2*uint64(i)
		if score < best {
			best = score
			a = Anchor{Byte: e.Value, Offset: i}
			ok = true
		}
	}
	return a, ok
}

// Template builds the masked 16-byte comparison template used to verify a
// SIMD candidate in one shot (spec §4.4 step 3): pat16 holds the first
// up-to-16 pattern bytes with wildcard positions zeroed, mask16 is 0xFF at
// concrete positions and 0x00 at wildcard/padding positions.
func Template(pat pattern.Pattern) (pat16, mask16 [16]byte) {
	n := len(pat)
	if n > 16 {
		n = 16
	}
	for i := 0; i < n; i++ {
		if !pat[i].Wildcard {
			pat16[i] = pat[i].Value
			mask16[i] = 0xFF
		}
	}
	return pat16, mask16
}
