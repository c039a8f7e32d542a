// Package worker runs the partner-search fan-out: each worker pulls jobs
// off the queue, searches one partner team, and sends the partner-local
// result to the job's results channel. Workers share no mutable state;
// the reduction happens after all results are collected.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/benchboss/tradewinds/internal/domain/trade"
	"github.com/benchboss/tradewinds/pkg/logger"
	"github.com/benchboss/tradewinds/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
)

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan trade.PartnerJob
}

// Worker processes partner-search jobs until stopped.
type Worker struct {
	queue  Queue
	engine *trade.Engine
	name   string

	stopOnce sync.Once
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, engine *trade.Engine, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		engine:   engine,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			w.processJob(ctx, job)
		}
	}
}

func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.shutdown) })
}

// Shutdown gracefully stops the worker.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.signalStop()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob searches one partner and always delivers a result, carrying
// the error when the search fails so the reduction never blocks.
func (w *Worker) processJob(ctx context.Context, job trade.PartnerJob) {
	metrics.RecordPartnerSearch()

	candidates, err := w.engine.SearchPartner(job.Target, job.Partner)
	result := trade.PartnerResult{
		Partner:    job.Partner.Team.Name,
		Candidates: candidates,
		Err:        err,
	}
	if err != nil {
		metrics.RecordWorkerError()
		w.logger.Error(ctx, "partner search failed",
			logger.String("partner", job.Partner.Team.Name),
			logger.Error(err),
		)
	}

	select {
	case job.Results <- result:
	case <-ctx.Done():
	}
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker
	logger  logger.Logger
}

// NewPool creates a worker pool of workerCount workers.
func NewPool(workerCount int, queue Queue, engine *trade.Engine) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewWorker(queue, engine, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		w.signalStop()
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}
