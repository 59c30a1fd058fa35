package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type Job func() error

// Pool runs jobs on a fixed set of goroutines. A pool of one worker runs each
// job inline in Do.
type Pool struct {
	wg     sync.WaitGroup
	work   chan Job
	cancel func()

	done   atomic.Uint64
	failed atomic.Uint64
}

// Start launches numWorkers workers; numWorkers < 1 means GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		cancel: func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan Job, numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for job := range pool.work {
				pool.run(job)
			}
		})
	}
	pool.cancel = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.failed.Add(1)
		return
	}
	p.done.Add(1)
}

// Do submits job. It must not be called after Wait(true).
func (p *Pool) Do(job Job) {
	if p.work == nil {
		p.run(job)
		return
	}
	p.work <- job
}

// Wait blocks until the workers exit. With done set it first stops accepting
// jobs, so the workers drain the queue and return. Wait returns the number of
// succeeded and failed jobs so far.
func (p *Pool) Wait(done bool) (succeeded, failed uint64) {
	if done {
		p.cancel()
	}
	p.wg.Wait()

	return p.done.Load(), p.failed.Load()
}
