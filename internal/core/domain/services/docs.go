// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - TenantRouter: classifies a request host as root site, customer portal,
//     back office, tenant storefront or not found
//
// TenantRouter is independent of any web framework. It takes a host string and
// a ports.TenantLookup, so it can be tested with plain strings and a stub lookup.
package services
