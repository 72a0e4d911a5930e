package verify

import (
	"testing"

	"github.com/coregx/sigscan/internal/pattern"
)

func TestFullMatchAt(t *testing.T) {
	pat, err := pattern.Parse("48 ?? 5C")
	if err != nil {
		t.Fatal(err)
	}
	span := []byte{0x00, 0x48, 0x99, 0x5C, 0x00}

	tests := []struct {
		name   string
		offset int
		want   bool
	}{
		{"match with wildcard in middle", 1, true},
		{"mismatch head", 0, false},
		{"out of bounds", 3, false},
		{"negative offset", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullMatchAt(pat, span, tt.offset); got != tt.want {
				t.Errorf("FullMatchAt(offset=%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestSolidMatchAt(t *testing.T) {
	solid := []byte{0x48, 0x8B}
	span := []byte{0x00, 0x48, 0x8B, 0x00}

	if !SolidMatchAt(solid, span, 1) {
		t.Error("SolidMatchAt(offset=1) = false, want true")
	}
	if SolidMatchAt(solid, span, 0) {
		t.Error("SolidMatchAt(offset=0) = true, want false")
	}
	if SolidMatchAt(solid, span, 3) {
		t.Error("SolidMatchAt(offset=3) = true, want false (out of bounds)")
	}
}
