package task

import (
	"context"
)

// Status is the lifecycle state of a tracked task.
type Status string

// Task statuses. COMPLETED and FAILED are terminal.
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further transition can happen from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Task types
const (
	// TypeLogFilter filters application log files by a date substring.
	TypeLogFilter = "log_filter"
)

// Task represents a unit of background work to be processed
type Task interface {
	// ID returns the task's unique identifier
	ID() string

	// Type returns the task type identifier
	Type() string

	// Execute runs the task logic
	Execute(ctx context.Context) error
}

// TaskQueueReader provides read-only access to the task channel
// allowing workers to consume tasks without the ability to enqueue
type TaskQueueReader interface {
	// GetChannel returns a read-only channel for consuming tasks
	GetChannel() <-chan Task
}

// TaskQueueWriter provides write access to the task queue
// allowing the registry to enqueue tasks for processing
type TaskQueueWriter interface {
	// Enqueue adds a task to the queue for processing.
	// Returns an error if the queue is full or closed.
	Enqueue(task Task) error

	// Close closes the task queue, preventing further task submission
	Close()
}
