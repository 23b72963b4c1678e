// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Implementations live in
// internal/platform/postgres and report failures with the errors declared
// here (ErrNotFound and its entity variants, ErrDuplicate, ErrInvalidEntity).
package store
