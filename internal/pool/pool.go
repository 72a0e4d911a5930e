package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size work-stealing goroutine pool. Each worker owns a
// deque; submission is round-robin across workers, an idle worker steals
// from a peer round-robin from its own queue's neighbor, and idle workers
// park on a condition variable rather than spin.
type Pool struct {
	queues  []*deque
	next    atomic.Uint64
	idle    atomic.Int32
	mu      sync.Mutex
	cond    *sync.Cond
	stopped bool
	wg      sync.WaitGroup
}

// New starts a pool with the given number of workers. A non-positive count
// is clamped to 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{queues: make([]*deque, workers)}
	p.cond = sync.NewCond(&p.mu)
	for i := range p.queues {
		p.queues[i] = &deque{}
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run(i)
	}
	return p
}

// Submit enqueues a task on the next worker in round-robin order and wakes
// a worker to run it. If an idle worker exists, waking just one is enough:
// it'll pick the task up directly or, if a peer grabs it first, go straight
// back to sleep having cost nothing extra. Once every worker is already
// active the pool is saturated, and a single wakeup could be missed if the
// one thread it lands on isn't the one that ends up idle first — so every
// worker is woken to recheck the queues.
func (p *Pool) Submit(t Task) {
	i := int(p.next.Add(1)-1) % len(p.queues)
	p.queues[i].pushBack(t)

	if p.idle.Load() > 0 {
		p.cond.Signal()
	} else {
		p.cond.Broadcast()
	}
}

// Stop signals every worker to exit once its queue and all peers' queues
// have drained, then waits for them to do so. Stop must be called at most
// once.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		if t, ok := own.popBack(); ok {
			t()
			continue
		}
		if t, ok := p.steal(id); ok {
			t()
			continue
		}

		p.mu.Lock()
		for {
			if p.stopped && p.allEmpty() {
				p.mu.Unlock()
				return
			}
			if !p.allEmpty() {
				p.mu.Unlock()
				break
			}
			p.idle.Add(1)
			p.cond.Wait()
			p.idle.Add(-1)
		}
	}
}

// steal round-robins through peer queues starting just after id, taking
// the first available task from the head of a peer's deque.
func (p *Pool) steal(id int) (Task, bool) {
	n := len(p.queues)
	for k := 1; k < n; k++ {
		victim := p.queues[(id+k)%n]
		if t, ok := victim.popFront(); ok {
			return t, true
		}
	}
	return nil, false
}

func (p *Pool) allEmpty() bool {
	for _, q := range p.queues {
		if !q.empty() {
			return false
		}
	}
	return true
}

var (
	globalOnce sync.Once
	globalPool *Pool
)

// Global returns a process-wide pool, created on first use with the given
// worker count (or runtime.GOMAXPROCS(0) if hint is non-positive). Later
// calls ignore hint and return the same pool; sizing the dispatcher's
// concurrency per-call rather than per-process is not worth a pool per
// thread-count.
func Global(hint int) *Pool {
	globalOnce.Do(func() {
		if hint <= 0 {
			hint = runtime.GOMAXPROCS(0)
		}
		globalPool = New(hint)
	})
	return globalPool
}
