package dispatch

import (
	"github.com/coregx/sigscan/internal/cancel"
	"github.com/coregx/sigscan/internal/kernel"
	"github.com/coregx/sigscan/internal/strategy"
)

// Result is a match location relative to the start of the region that was
// scanned.
type Result struct {
	Offset int
	Found  bool
}

// ScanRegion runs the strategy's kernel over region, splitting the work
// across threads chunks when the region is large enough and threads > 1.
// threads <= 1 or a region smaller than ChunkSize always scans in a single
// call on the current goroutine.
func ScanRegion(c *strategy.Compiled, region []byte, threads int) Result {
	fn := kernel.Select(c)
	if threads <= 1 || len(region) < ChunkSize {
		flag := cancel.New()
		off, ok := fn(c, region, flag)
		return Result{Offset: off, Found: ok}
	}
	return scanParallel(c, fn, region, threads)
}

// ScanRegions scans each region in order, returning the first match found
// in region order: a match in an earlier region always wins even though
// each region's own scan may run its work across multiple goroutines. This
// falls out naturally from scanning regions strictly one at a time, each
// with its own fresh cancellation flag.
func ScanRegions(c *strategy.Compiled, regions [][]byte, threads int) (regionIndex int, res Result) {
	for i, region := range regions {
		r := ScanRegion(c, region, threads)
		if r.Found {
			return i, r
		}
	}
	return -1, Result{}
}

func runChunk(c *strategy.Compiled, fn kernel.Func, region []byte, ch Chunk, flag *cancel.Flag, results []int, found []bool, idx int) {
	span := region[ch.Start:ch.End]
	if off, ok := fn(c, span, flag); ok {
		results[idx] = ch.Start + off
		found[idx] = true
	}
}

func aggregateMin(results []int, found []bool) Result {
	best := -1
	for i, ok := range found {
		if ok && (best == -1 || results[i] < best) {
			best = results[i]
		}
	}
	if best == -1 {
		return Result{}
	}
	return Result{Offset: best, Found: true}
}
