// Package middleware contains HTTP middleware shared by the API routes.
package middleware
