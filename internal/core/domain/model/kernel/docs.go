// Package kernel provides the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier for tenants, tables, orders and products
//   - Money: exact, non-negative amount in minor currency units
//
// Both are immutable and safe for concurrent use.
package kernel
