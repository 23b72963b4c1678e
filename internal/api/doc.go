// Package api handles incoming HTTP requests for the gym backend: request
// decoding and validation, calls into the services, and response formatting.
// It translates service and store errors into HTTP status codes without
// exposing internal error details to clients.
package api
