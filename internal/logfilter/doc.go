// Package logfilter extracts the lines of the application's daily log files
// that contain a date string and writes them to a standalone export file.
package logfilter
