//go:build amd64 && !nosimd

package kernel

import "golang.org/x/sys/cpu"

// hasWideLanes mirrors the teacher's hasAVX2 package var (simd/memchr_amd64.go):
// a runtime CPU feature check, cached once at init, that lets the dynamic-anchor
// kernel double its lane width on hardware that can execute twice as many
// 8-byte compares per cycle.
var hasWideLanes = cpu.X86.HasAVX2
