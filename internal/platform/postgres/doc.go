// Package postgres provides PostgreSQL implementations of the store
// interfaces. Identifier strings the database cannot parse are folded into
// the not-found error class so the storage layer's id shape never reaches
// clients.
package postgres
