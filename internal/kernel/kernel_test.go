package kernel

import (
	"testing"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/pattern"
	"github.com/coregx/sigscan/internal/strategy"
)

func compile(t *testing.T, text string) *strategy.Compiled {
	t.Helper()
	pat, err := pattern.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return strategy.Analyze(pat)
}

func TestKernelsFindLowestOffset(t *testing.T) {
	tests := []struct {
		name       string
		sig        string
		span       []byte
		wantOffset int
		wantFound  bool
	}{
		{
			"simple, two occurrences picks first",
			"AA BB",
			[]byte{0x00, 0xAA, 0xBB, 0x00, 0xAA, 0xBB},
			1, true,
		},
		{
			"simple, no match",
			"AA BB",
			[]byte{0x00, 0xAA, 0xCC},
			0, false,
		},
		{
			"forward anchor",
			"AA ?? CC ??",
			[]byte{0x00, 0xAA, 0xBB, 0xCC, 0x00},
			1, true,
		},
		{
			"backward anchor",
			"?? BB CC",
			[]byte{0x00, 0xAA, 0xBB, 0xCC, 0x00},
			1, true,
		},
		{
			"backward anchor rejects candidate before span start",
			"?? ?? CC",
			[]byte{0xCC, 0x00, 0x00},
			0, false,
		},
		{
			"dual anchor",
			"AA ?? ?? DD",
			[]byte{0x00, 0xAA, 0xBB, 0xCC, 0xDD, 0x00},
			1, true,
		},
		{
			"dynamic anchor",
			"?? BB CC ??",
			[]byte{0x00, 0xAA, 0xBB, 0xCC, 0xDD, 0x00},
			1, true,
		},
		{
			"dynamic anchor no match",
			"?? BB CC ??",
			[]byte{0x00, 0xAA, 0xBB, 0xEE, 0xDD, 0x00},
			0, false,
		},
		{
			"all wildcard pattern is always absent",
			"?? ?? ??",
			[]byte{0x00, 0x01, 0x02, 0x03, 0x04},
			0, false,
		},
		{
			"span shorter than pattern",
			"AA BB CC",
			[]byte{0xAA, 0xBB},
			0, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := compile(t, tt.sig)
			fn := Select(c)
			off, ok := fn(c, tt.span, cancel.New())
			if ok != tt.wantFound {
				t.Fatalf("found = %v, want %v", ok, tt.wantFound)
			}
			if ok && off != tt.wantOffset {
				t.Errorf("offset = %d, want %d", off, tt.wantOffset)
			}
		})
	}
}

func TestKernelsRespectPresetCancellation(t *testing.T) {
	c := compile(t, "AA BB")
	span := []byte{0xAA, 0xBB, 0xAA, 0xBB}
	flag := cancel.New()
	flag.Set()

	fn := Select(c)
	if _, ok := fn(c, span, flag); ok {
		t.Error("kernel found a match despite a preset cancellation flag")
	}
}

func TestKernelsSetFlagOnMatch(t *testing.T) {
	c := compile(t, "AA BB")
	span := []byte{0xAA, 0xBB}
	flag := cancel.New()

	if _, ok := Select(c)(c, span, flag); !ok {
		t.Fatal("expected a match")
	}
	if !flag.IsSet() {
		t.Error("flag not set after a match was found")
	}
}

// TestDynamicAnchorScanCoversBulkTailBoundary regression-tests the SIMD
// kernel's bulk/tail split: a match whose anchor byte falls exactly at the
// boundary between the last full bulk iteration and the tail sweep used to
// be silently dropped, because the tail sweep started re-verifying from
// the bulk cursor instead of from cursor-anchorOffset. 262144 is a multiple
// of both possible SIMD lane widths (16 and 32 bytes), so this boundary
// falls at the same place regardless of which lane width the build/CPU
// selects.
func TestDynamicAnchorScanCoversBulkTailBoundary(t *testing.T) {
	const boundary = 262144
	c := compile(t, "?? 41 42 ??")
	if c.Strategy != strategy.DynamicAnchor {
		t.Fatalf("Strategy = %v, want DynamicAnchor", c.Strategy)
	}

	span := make([]byte, boundary+4)
	for i := range span {
		span[i] = 0xFF
	}
	matchStart := boundary - 1
	span[matchStart+1] = 0x41
	span[matchStart+2] = 0x42

	off, ok := Select(c)(c, span, cancel.New())
	if !ok || off != matchStart {
		t.Errorf("Select(c)(...) = (%d, %v), want (%d, true)", off, ok, matchStart)
	}
}

// TestDynamicAnchorLongPattern exercises the SIMD kernel's fallback to
// FullMatchAt for patterns longer than the 16-byte masked template.
func TestDynamicAnchorLongPattern(t *testing.T) {
	sig := "?? 41 42 43 44 45 46 47 48 49 4A 4B 4C 4D 4E 4F 50 51 52 ??"
	c := compile(t, sig)
	if c.Strategy != strategy.DynamicAnchor {
		t.Fatalf("Strategy = %v, want DynamicAnchor", c.Strategy)
	}
	span := make([]byte, 40)
	for i := range span {
		span[i] = 0xFF
	}
	copy(span[5:], []byte{0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, 0x51, 0x52})

	off, ok := Select(c)(c, span, cancel.New())
	if !ok || off != 4 {
		t.Errorf("Select(c)(...) = (%d, %v), want (4, true)", off, ok)
	}
}
