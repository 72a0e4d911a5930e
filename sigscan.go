package sigscan

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/coregx/sigscan/internal/dispatch"
	"github.com/coregx/sigscan/internal/pattern"
	"github.com/coregx/sigscan/internal/strategy"
)

// Signature is a compiled IDA-style byte pattern, ready to scan any number
// of byte regions. A Signature is immutable after Compile returns and safe
// for concurrent use by multiple goroutines.
type Signature struct {
	compiled *strategy.Compiled
	threads  int
}

// Compile parses text and analyzes it into the strategy and auxiliary
// tables its scans will use. An empty (or all-whitespace) pattern compiles
// successfully and always reports no match.
func Compile(text string) (*Signature, error) {
	pat, err := pattern.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Signature{
		compiled: strategy.Analyze(pat),
		threads:  runtime.GOMAXPROCS(0),
	}, nil
}

// MustCompile is like Compile but panics on error. It's meant for
// signatures known at compile time (package-level vars), not for text
// coming from untrusted input.
func MustCompile(text string) *Signature {
	sig, err := Compile(text)
	if err != nil {
		panic(fmt.Sprintf("sigscan: MustCompile(%q): %v", text, err))
	}
	return sig
}

// Scan searches region for the signature and returns the address of the
// lowest match, computed as the address of region's first byte plus the
// match offset. Scan returns ok=false for a nil or empty region, or for a
// Signature compiled from an empty pattern.
func (s *Signature) Scan(region []byte) (uintptr, bool) {
	if s.compiled.Pattern.Len() == 0 || len(region) == 0 {
		return 0, false
	}
	res := dispatch.ScanRegion(s.compiled, region, s.threads)
	if !res.Found {
		return 0, false
	}
	return regionAddr(region) + uintptr(res.Offset), true
}

// ScanMany searches each region in order and returns the address of the
// first match found in region order: a match in an earlier region always
// wins over one in a later region, even though each region's own scan may
// be split across goroutines internally.
func (s *Signature) ScanMany(regions [][]byte) (uintptr, bool) {
	if s.compiled.Pattern.Len() == 0 {
		return 0, false
	}
	idx, res := dispatch.ScanRegions(s.compiled, regions, s.threads)
	if idx < 0 {
		return 0, false
	}
	return regionAddr(regions[idx]) + uintptr(res.Offset), true
}

// Strategy reports which scan strategy this signature was compiled to use.
func (s *Signature) Strategy() strategy.Strategy { return s.compiled.Strategy }

// regionAddr returns the address of region's first byte as a uintptr. The
// caller's []byte already stands in for the "process memory" this library
// deliberately doesn't enumerate itself (spec §1); this is the one place
// that bridges a Go slice back to the flat address space a caller expects
// a match location to be reported in.
func regionAddr(region []byte) uintptr {
	if len(region) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&region[0]))
}
