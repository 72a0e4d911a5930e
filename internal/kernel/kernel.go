// Package kernel implements the five scan strategies chosen by the strategy
// package: simple (Boyer-Moore-Horspool), forward/backward/dual anchor, and
// dynamic anchor (scalar, or SIMD-style on capable architectures).
//
// Every kernel shares one contract (spec §4.4):
//
//   - input: a byte span S and an optional shared cancellation flag
//   - output: the lowest matching offset within S, or ok=false
//   - before each candidate verification, if the flag is set, return ok=false
//   - on a match, set the flag (if provided) before returning
//   - if len(S) < len(pattern) or the pattern is empty, return ok=false
package kernel

import (
	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/strategy"
)

// Func is the shape every kernel implements: scan span for c's pattern,
// returning the lowest matching offset local to span.
type Func func(c *strategy.Compiled, span []byte, flag *cancel.Flag) (int, bool)

// Select returns the kernel appropriate for c's strategy. The DynamicAnchor
// case resolves to whichever build produced this binary — SIMD-style on
// amd64/arm64 unless built with the nosimd tag, scalar otherwise.
func Select(c *strategy.Compiled) Func {
	switch c.Strategy {
	case strategy.Simple:
		return Simple
	case strategy.ForwardAnchor:
		return ForwardAnchor
	case strategy.BackwardAnchor:
		return BackwardAnchor
	case strategy.DualAnchor:
		return DualAnchor
	case strategy.DynamicAnchor:
		return DynamicAnchorScan
	default:
		return DynamicAnchorScan
	}
}

func polled(flag *cancel.Flag) bool { return flag.IsSet() }
