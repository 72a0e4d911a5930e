//go:build !nomt

package dispatch

import (
	"sync"

	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/kernel"
	"github.com/coregx/sigscan/internal/pool"
	"github.com/coregx/sigscan/internal/strategy"
)

// scanParallel fans a region out across chunks on the shared worker pool.
// Each chunk has its own cancellation flag: a match in chunk i sets the
// flags of the chunks after it, whose matches can only lie at higher
// addresses, so they may stop early, while the chunks before it keep
// scanning. The final answer is the minimum start address among everything
// that completed, not whichever chunk happened to finish first.
func scanParallel(c *strategy.Compiled, fn kernel.Func, region []byte, threads int) Result {
	chunks := PlanChunks(len(region), len(c.Pattern))
	if len(chunks) <= 1 {
		flag := cancel.New()
		off, ok := fn(c, region, flag)
		return Result{Offset: off, Found: ok}
	}

	p := pool.Global(threads)
	flags := make([]*cancel.Flag, len(chunks))
	for i := range flags {
		flags[i] = cancel.New()
	}
	results := make([]int, len(chunks))
	found := make([]bool, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, ch := range chunks {
		i, ch := i, ch
		p.Submit(func() {
			defer wg.Done()
			runChunk(c, fn, region, ch, flags[i], results, found, i)
			if found[i] {
				for j := i + 1; j < len(flags); j++ {
					flags[j].Set()
				}
			}
		})
	}
	wg.Wait()

	return aggregateMin(results, found)
}
