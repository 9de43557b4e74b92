// Package worker provides the concurrency layer for batch extraction.
// Extraction itself is a pure in-memory transform, so parallelism is bounded
// only by payload fetching, which the per-host rate limiter paces.
package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task interface {
	Run(ctx context.Context) TaskResult
}

// TaskResult is the outcome of one task.
type TaskResult interface {
	Err() error
}

// Pool runs tasks on a fixed number of workers.
type Pool struct {
	workers   int
	tasks     chan Task
	results   chan TaskResult
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers, defaulting to 1.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, workers*2),
		results: make(chan TaskResult, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			result := task.Run(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task. Submissions after Shutdown are dropped.
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
	case p.tasks <- task:
	}
}

// Wait closes the queue, waits for the workers to drain it, and returns all
// results in completion order.
func (p *Pool) Wait() []TaskResult {
	close(p.tasks)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []TaskResult
	for r := range p.results {
		results = append(results, r)
	}
	return results
}

// Shutdown cancels in-flight tasks and releases the workers.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
