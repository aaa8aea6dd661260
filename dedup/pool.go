package dedup

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// DefaultWorkers bounds digest concurrency when no explicit value is
// configured.
const DefaultWorkers = 8

// Result pairs an input path with either its fingerprint or the failure
// that prevented computing one. Exactly one of Fingerprint and Err is set.
type Result struct {
	Path        string
	Fingerprint Fingerprint
	Err         error
}

// Pool computes file fingerprints over a fixed number of workers.
type Pool struct {
	workers   int
	processed *xsync.Counter
}

// NewPool returns a pool with the given worker count. Non-positive counts
// fall back to DefaultWorkers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Pool{workers: workers, processed: xsync.NewCounter()}
}

// Workers reports the pool's concurrency.
func (p *Pool) Workers() int {
	return p.workers
}

// Processed reports how many paths have been digested so far. Safe to
// call from any goroutine while Run is draining.
func (p *Pool) Processed() int64 {
	return p.processed.Value()
}

// Run fans the given paths out over the pool's workers and returns a
// channel carrying exactly one Result per path, in completion order.
// The channel is closed once every submitted path has produced a result.
//
// Cancelling ctx stops submitting new paths; digests already in flight run
// to completion and all worker goroutines exit. A failing digest yields a
// failure-tagged Result and never aborts the pool.
func (p *Pool) Run(ctx context.Context, paths []string) <-chan Result {
	pathChan := make(chan string)
	resultChan := make(chan Result, p.workers)

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for range p.workers {
		go func() {
			defer wg.Done()
			for path := range pathChan {
				fp, err := DigestFile(path)
				p.processed.Inc()
				select {
				case resultChan <- Result{Path: path, Fingerprint: fp, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(pathChan)
		for _, path := range paths {
			select {
			case pathChan <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	return resultChan
}
