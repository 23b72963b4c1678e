package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

// ErrTaskNotFound is returned when no task is registered under an ID.
var ErrTaskNotFound = errors.New("task not found")

// errEmptyResult marks a job that reported success without a result path.
var errEmptyResult = errors.New("job finished without a result path")

// Job is the work behind a tracked task. It returns the path of the artifact
// it produced.
type Job func(ctx context.Context) (string, error)

// Info is a point-in-time view of a tracked task.
type Info struct {
	ID          string     `json:"task_id"`
	Type        string     `json:"type"`
	Status      Status     `json:"status"`
	ResultPath  string     `json:"-"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// state is immutable once published; transitions swap the whole value.
type state struct {
	status     Status
	resultPath string
	err        error
	finishedAt time.Time
}

type record struct {
	id          string
	taskType    string
	submittedAt time.Time
	state       atomic.Pointer[state]
}

// finish moves the record from IN_PROGRESS to a terminal state. Only the
// first call wins, so a terminal state is never overwritten.
func (r *record) finish(next *state) bool {
	cur := r.state.Load()
	if cur.status.Terminal() {
		return false
	}
	return r.state.CompareAndSwap(cur, next)
}

func (r *record) info() Info {
	s := r.state.Load()
	info := Info{
		ID:          r.id,
		Type:        r.taskType,
		Status:      s.status,
		SubmittedAt: r.submittedAt,
	}
	if s.status == StatusCompleted {
		info.ResultPath = s.resultPath
	}
	if s.err != nil {
		info.Error = s.err.Error()
	}
	if !s.finishedAt.IsZero() {
		finished := s.finishedAt
		info.FinishedAt = &finished
	}
	return info
}

// Registry issues opaque task IDs for asynchronous jobs and tracks each
// job's lifecycle. Records are published through an atomic pointer, so a
// reader that observes COMPLETED always observes the result path with it.
//
// Records and result files are kept for the lifetime of the process.
// TODO: add a retention policy that expires finished records and removes
// their result files.
type Registry struct {
	queue   TaskQueueWriter
	records *xsync.MapOf[string, *record]
	logger  *slog.Logger
	now     func() time.Time
}

// NewRegistry creates a Registry that hands jobs to queue.
func NewRegistry(queue TaskQueueWriter, logger *slog.Logger) *Registry {
	if queue == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("task queue cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		queue:   queue,
		records: xsync.NewMapOf[string, *record](),
		logger:  logger.With(slog.String("component", "task_registry")),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Submit registers a new task in IN_PROGRESS and schedules job without
// waiting for it. It always returns the new task ID; if the job cannot be
// scheduled the task is marked FAILED instead of returning an error.
func (r *Registry) Submit(ctx context.Context, taskType string, job Job) string {
	rec := &record{
		id:          uuid.NewString(),
		taskType:    taskType,
		submittedAt: r.now(),
	}
	rec.state.Store(&state{status: StatusInProgress})
	r.records.Store(rec.id, rec)

	log := logger.FromContextOrDefault(ctx, r.logger).
		With(slog.String("task_id", rec.id), slog.String("task_type", taskType))

	if err := r.queue.Enqueue(&trackedTask{record: rec, job: job, registry: r}); err != nil {
		log.Error("failed to schedule task", slog.String("error", err.Error()))
		r.fail(rec, fmt.Errorf("schedule task: %w", err))
		return rec.id
	}

	log.Info("task submitted")
	return rec.id
}

// Status returns the current status of a task.
func (r *Registry) Status(id string) (Status, bool) {
	rec, ok := r.records.Load(id)
	if !ok {
		return "", false
	}
	return rec.state.Load().status, true
}

// ResultPath returns the artifact path of a task. It is only available once
// the task has COMPLETED; every other status, including an unknown ID,
// reports false.
func (r *Registry) ResultPath(id string) (string, bool) {
	rec, ok := r.records.Load(id)
	if !ok {
		return "", false
	}
	s := rec.state.Load()
	if s.status != StatusCompleted {
		return "", false
	}
	return s.resultPath, true
}

// Info returns a snapshot of a task or ErrTaskNotFound.
func (r *Registry) Info(id string) (Info, error) {
	rec, ok := r.records.Load(id)
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return rec.info(), nil
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	return r.records.Size()
}

func (r *Registry) complete(rec *record, path string) {
	if rec.finish(&state{status: StatusCompleted, resultPath: path, finishedAt: r.now()}) {
		r.logger.Info("task completed", slog.String("task_id", rec.id), slog.String("result_path", path))
	}
}

func (r *Registry) fail(rec *record, err error) {
	if rec.finish(&state{status: StatusFailed, err: err, finishedAt: r.now()}) {
		r.logger.Warn("task failed", slog.String("task_id", rec.id), slog.String("error", err.Error()))
	}
}

// trackedTask adapts a Job to the Task interface and records its outcome.
type trackedTask struct {
	record   *record
	job      Job
	registry *Registry
}

func (t *trackedTask) ID() string   { return t.record.id }
func (t *trackedTask) Type() string { return t.record.taskType }

// Execute runs the job and publishes its terminal state. A panic inside the
// job is recorded as a failure and then re-raised for the worker to log.
func (t *trackedTask) Execute(ctx context.Context) error {
	defer func() {
		if rec := recover(); rec != nil {
			t.registry.fail(t.record, fmt.Errorf("job panicked: %v", rec))
			panic(rec)
		}
	}()

	path, err := t.job(ctx)
	if err == nil && path == "" {
		err = errEmptyResult
	}
	if err != nil {
		t.registry.fail(t.record, err)
		return err
	}

	t.registry.complete(t.record, path)
	return nil
}
