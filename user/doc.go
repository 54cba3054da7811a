// Package user defines the customer account entity and its persistence
// contract. The concrete PostgreSQL implementation lives in the postgres
// package; tests use lightweight in-memory fakes.
package user
