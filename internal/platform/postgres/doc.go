// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. A single generic ResourceStore serves
// every entity, driven by its domain.Resource metadata; schema migrations
// are embedded and applied with goose.
package postgres
