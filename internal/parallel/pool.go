// Package parallel runs glyph jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is one unit of work. worker is the index of the goroutine running
// it, in [0, Workers()), so callers can keep per-worker state such as a
// font engine that must not be shared.
type Task func(worker int)

// WorkerPool is a pool of goroutines with one queue each. An idle worker
// steals from the other queues before blocking on its own.
//
// A WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan Task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool. If workers is 0 or negative, GOMAXPROCS is
// used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(8, workers*4)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan Task, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan Task, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(id)
			return
		case task := <-own:
			task(id)
		default:
			if task := p.steal(id); task != nil {
				task(id)
				continue
			}
			select {
			case <-p.done:
				p.drain(id)
				return
			case task := <-own:
				task(id)
			}
		}
	}
}

// drain runs whatever is left in the worker's own queue.
func (p *WorkerPool) drain(id int) {
	for {
		select {
		case task := <-p.queues[id]:
			task(id)
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) Task {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin and waits for all of them.
// It does nothing once the pool is closed.
func (p *WorkerPool) ExecuteAll(tasks []Task) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		wrapped := func(worker int) {
			defer wg.Done()
			task(worker)
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}
	wg.Wait()
}

// Close stops accepting work, finishes queued tasks and stops the workers.
// It is safe to call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
