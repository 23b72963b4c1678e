// Package postgres provides PostgreSQL implementations of the store
// interfaces, built on database/sql with the pgx driver. It maps driver
// errors to store errors (MapError) and embeds the goose migrations that
// define the schema (Migrate).
package postgres
