package task

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// WorkerPool manages a pool of worker goroutines that process tasks
// from a task queue. It handles graceful shutdown and worker lifecycle.
type WorkerPool struct {
	taskQueue   TaskQueueReader
	workerCount int

	// wg tracks active worker goroutines for clean shutdown
	wg sync.WaitGroup

	// ctx is handed to every executing task and cancelled by Stop
	ctx    context.Context
	cancel context.CancelFunc

	logger *slog.Logger

	// errorHandler is called when a task execution fails.
	// If nil, errors are only logged.
	errorHandler func(task Task, err error)

	startOnce sync.Once
	stopOnce  sync.Once
}

// WorkerPoolConfig holds configuration options for the worker pool
type WorkerPoolConfig struct {
	// WorkerCount determines how many concurrent worker goroutines to start.
	// If zero or negative, defaults to 1.
	WorkerCount int
}

// DefaultWorkerPoolConfig returns a WorkerPoolConfig with reasonable defaults
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		WorkerCount: 2,
	}
}

// NewWorkerPool creates a new worker pool with the specified configuration
func NewWorkerPool(taskQueue TaskQueueReader, config WorkerPoolConfig, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "worker_pool"))

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count specified, using default",
			slog.Int("specified_count", config.WorkerCount),
			slog.Int("default_count", 1))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		taskQueue:   taskQueue,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

// SetErrorHandler allows setting a custom error handler for task execution failures.
// It must be called before Start.
func (p *WorkerPool) SetErrorHandler(handler func(task Task, err error)) {
	p.errorHandler = handler
}

// Start launches the worker goroutines. Calling Start more than once has no effect.
func (p *WorkerPool) Start() {
	p.startOnce.Do(func() {
		p.logger.Info("starting worker pool", slog.Int("worker_count", p.workerCount))
		for i := 0; i < p.workerCount; i++ {
			p.wg.Add(1)
			go p.worker(i)
		}
	})
}

// Stop cancels the context passed to running tasks and waits for every
// worker to return. Tasks still buffered in the queue are not executed.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("stopping worker pool")
		p.cancel()
		p.wg.Wait()
		p.logger.Info("worker pool stopped")
	})
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("starting worker", slog.Int("worker_id", id))

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Debug("stopping worker", slog.Int("worker_id", id))
			return

		case task, ok := <-p.taskQueue.GetChannel():
			if !ok {
				p.logger.Debug("task channel closed, stopping worker", slog.Int("worker_id", id))
				return
			}
			p.processTask(task, id)
		}
	}
}

// processTask executes a single task, turning a panic into an error so one
// misbehaving task cannot take down its worker.
func (p *WorkerPool) processTask(task Task, workerID int) {
	log := p.logger.With(
		slog.String("task_id", task.ID()),
		slog.String("task_type", task.Type()),
		slog.Int("worker_id", workerID),
	)

	log.Info("processing task")

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("task panicked", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
				err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		return task.Execute(p.ctx)
	}()

	if err != nil {
		log.Error("task execution failed", slog.String("error", err.Error()))
		if p.errorHandler != nil {
			p.errorHandler(task, err)
		}
		return
	}

	log.Info("task completed successfully")
}
