// Package shared holds HTTP helpers used by both handlers and middleware:
// JSON decoding and validation, JSON and error responses, and the request
// trace ID.
package shared
