// Package service implements the application's use cases on top of the
// store interfaces.
//
// PersonService keeps an EntityCache in line with the store: creates and
// updates write through, deletes remove, and reads fall back to the store on
// a miss. Trainer and gym deletions are announced as events so cached
// persons that referenced them are dropped.
//
// LogService submits log exports to the task registry and resolves their
// result files.
package service
