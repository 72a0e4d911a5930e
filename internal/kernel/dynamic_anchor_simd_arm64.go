//go:build arm64 && !nosimd

package kernel

import "golang.org/x/sys/cpu"

// hasWideLanes on arm64: ASIMD is universal on arm64, but SVE-capable cores
// can retire wide compares fast enough that the doubled lane width still
// pays for itself, so gate the same way the teacher gates its ARM NEON
// paths on cpu.ARM64 feature bits.
var hasWideLanes = cpu.ARM64.HasSVE
