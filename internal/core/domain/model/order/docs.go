// Package order provides the Order aggregate and the status state machine shared
// by the table ordering view, the kitchen display and the back-office dashboard.
//
// The package includes:
//   - Order: aggregate root holding items, frozen total and lifecycle status
//   - Item: an order line with the unit price captured at placement time
//   - Status: closed enumeration with the transition table
//
// Key business rules:
//   - Status follows PENDING -> PREPARING -> READY -> COMPLETED
//   - CANCELLED is reachable from PENDING and PREPARING only
//   - COMPLETED and CANCELLED are terminal
//   - total = Σ quantity x unit price snapshot, fixed at creation
//   - Kitchen order: status priority ascending, then creation time ascending
//
// Concurrent changes to the same order are serialized by the persistence layer
// with a compare-and-set on the status column; this package only decides whether
// a single transition is legal.
package order
