package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	queue := NewTaskQueue(10, log)

	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 5}, log)
	assert.Equal(t, 5, pool.workerCount)
	assert.Nil(t, pool.errorHandler)

	pool = NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 0}, log)
	assert.Equal(t, 1, pool.workerCount)

	pool = NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: -5}, log)
	assert.Equal(t, 1, pool.workerCount)

	assert.Equal(t, 2, DefaultWorkerPoolConfig().WorkerCount)
}

func TestWorkerPool_ProcessesTasks(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	queue := NewTaskQueue(10, log)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 3}, log)
	pool.Start()
	defer pool.Stop()

	var executed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		task := newMockTask()
		task.execFn = func(ctx context.Context) error {
			defer wg.Done()
			executed.Add(1)
			return nil
		}
		require.NoError(t, queue.Enqueue(task))
	}

	wg.Wait()
	assert.Equal(t, int32(5), executed.Load())
}

func TestWorkerPool_ErrorHandler(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	queue := NewTaskQueue(10, log)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 1}, log)

	errs := make(chan error, 2)
	pool.SetErrorHandler(func(task Task, err error) {
		errs <- err
	})
	pool.Start()
	defer pool.Stop()

	failing := newMockTask()
	failing.execFn = func(ctx context.Context) error { return errors.New("boom") }
	panicking := newMockTask()
	panicking.execFn = func(ctx context.Context) error { panic("kaboom") }

	require.NoError(t, queue.Enqueue(failing))
	require.NoError(t, queue.Enqueue(panicking))

	for _, want := range []string{"boom", "task panicked: kaboom"} {
		select {
		case err := <-errs:
			assert.EqualError(t, err, want)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestWorkerPool_StopCancelsRunningTasks(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	queue := NewTaskQueue(10, log)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 1}, log)
	pool.Start()
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	task := newMockTask()
	task.execFn = func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}
	require.NoError(t, queue.Enqueue(task))

	<-started
	pool.Stop()
	pool.Stop()

	select {
	case <-cancelled:
	default:
		t.Fatal("running task was not cancelled by Stop")
	}
}

func TestWorkerPool_ExitsWhenQueueClosed(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()
	queue := NewTaskQueue(1, log)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: 2}, log)
	pool.Start()

	queue.Close()

	done := make(chan struct{})
	go func() {
		pool.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not exit after the queue was closed")
	}
	pool.Stop()
}
