//go:build !amd64 || noprefetch

package kernel

// prefetchSpan is a no-op on architectures (or builds) where a manual
// prefetch hint has no expressible benefit without cgo/assembly. Semantics
// are identical either way — see prefetch_amd64.go.
func prefetchSpan(_ []byte, _ int) {}
