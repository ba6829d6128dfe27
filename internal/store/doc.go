// Package store defines the persistence interfaces the API depends on, the
// sentinel errors they report, and the DBTX abstraction that lets
// implementations run against either a connection or a transaction.
package store
