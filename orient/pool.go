package orient

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool for converting distinct frames in
// parallel. Workers are spawned once at creation and reused across many
// batches, avoiding per-batch goroutine spawn overhead. Every frame in a
// batch has its own private source and destination buffers, so no
// coordination beyond the completion barrier is needed.
type Pool struct {
	numWorkers int
	workC      chan poolItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type poolItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers.
// If numWorkers <= 0, GOMAXPROCS is used.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan poolItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor executes fn over [0, n) using atomic work stealing, which
// balances well when frame sizes vary within a batch. Falls back to a
// sequential loop when the pool is closed or a single worker suffices.
func (p *Pool) parallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- poolItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ConvertAll converts a batch of frames through conv, one worker per
// in-flight frame. Results and errors are positional: out[i] and errs[i]
// belong to frames[i]. Every source frame is released exactly once, as
// with Converter.Convert. Blocks until the whole batch completes.
func (p *Pool) ConvertAll(conv *Converter, frames []*Frame) (out []*Frame, errs []error) {
	out = make([]*Frame, len(frames))
	errs = make([]error, len(frames))
	p.parallelFor(len(frames), func(i int) {
		out[i], errs[i] = conv.Convert(frames[i])
	})
	return out, errs
}
