// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests using it should carry the integration build tag
// and are skipped when no database URL is configured.
package testdb
