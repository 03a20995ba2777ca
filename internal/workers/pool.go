// Package workers runs independent jobs on a fixed set of goroutines.
package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/gogpu/vgbuf/internal/logger"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("workers: pool closed")

// Job is one unit of work. It receives the context passed to Run.
type Job func(ctx context.Context)

// Pool is a fixed set of worker goroutines with one queue each.
//
// Jobs are dealt round-robin onto the queues. A worker whose queue is empty
// takes jobs from the other queues, so one slow job does not hold up the
// jobs queued behind it.
//
// Pool is safe for concurrent use.
type Pool struct {
	queues []chan Job
	done   chan struct{}
	wg     sync.WaitGroup

	// mu is held for reading while Run queues jobs and for writing by Close.
	mu     sync.RWMutex
	closed bool
}

// New starts a pool of n workers. Zero or negative n means GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &Pool{
		queues: make([]chan Job, n),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan Job, depth)
	}

	p.wg.Add(n)
	for i := range n {
		go p.loop(i)
	}
	logger.Get().Debug("worker pool started", "workers", n)
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.queues) }

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job(context.Background())
			continue
		default:
		}

		if job := p.take(id); job != nil {
			job(context.Background())
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job(context.Background())
		}
	}
}

func drain(q chan Job) {
	for {
		select {
		case job := <-q:
			job(context.Background())
		default:
			return
		}
	}
}

// take removes one job from any queue other than id.
func (p *Pool) take(id int) Job {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-q:
			return job
		default:
		}
	}
	return nil
}

// Run executes every job and waits until all of them have returned.
//
// Jobs that have not started when ctx is canceled are skipped, and Run
// returns ctx.Err(). Run on a closed pool runs nothing and returns
// ErrClosed.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrClosed
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		p.queues[i%len(p.queues)] <- func(context.Context) {
			defer pending.Done()
			if ctx.Err() != nil {
				return
			}
			job(ctx)
		}
	}
	p.mu.RUnlock()

	pending.Wait()
	return ctx.Err()
}

// Close waits for queued jobs to finish and stops the workers. Close is
// safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
