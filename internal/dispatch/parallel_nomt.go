//go:build nomt

package dispatch

import (
	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/kernel"
	"github.com/coregx/sigscan/internal/strategy"
)

// scanParallel degrades to a single sequential scan when built with nomt:
// the multithreading feature is compiled out entirely, so ScanRegion's
// chunk-worthy sizes still get a correct answer, just without a pool.
func scanParallel(c *strategy.Compiled, fn kernel.Func, region []byte, _ int) Result {
	flag := cancel.New()
	off, ok := fn(c, region, flag)
	return Result{Offset: off, Found: ok}
}
