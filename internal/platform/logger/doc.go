// Package logger provides structured logging functionality for the application.
//
// It uses Go's standard library log/slog package to emit JSON records with a
// configurable level, optionally mirrored into a daily file named
// <prefix><YYYY-MM-DD><suffix>. Context helpers carry request-scoped loggers
// through handlers, services and stores.
package logger
