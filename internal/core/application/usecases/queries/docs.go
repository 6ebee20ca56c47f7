// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read committed data through the reader ports and never open
// a unit of work, so they run concurrently with writers.
package queries
