// Package task runs background jobs off the request path.
//
// A Registry hands out opaque task IDs and tracks each job from IN_PROGRESS
// to exactly one terminal state (COMPLETED or FAILED). Jobs travel through a
// bounded TaskQueue to a WorkerPool, whose Stop cancels the context passed to
// running jobs.
package task
