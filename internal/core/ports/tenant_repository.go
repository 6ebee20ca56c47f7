// Package ports defines the contracts between the ordering core and its adapters.
// Repositories are bound to a UnitOfWork; readers and lookups run outside
// transactions and never block writers.
package ports

import (
	"context"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"
)

// TenantRepository stores tenant aggregates. Tenants are never deleted.
type TenantRepository interface {
	// Add persists a new tenant. A taken slug yields errs.ObjectConflictError.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// Update persists the mutable fields of a tenant (display name, active flag).
	// The slug is never rewritten.
	Update(ctx context.Context, aggregate *tenant.Tenant) error

	// Get returns errs.ObjectNotFoundError when the tenant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// ListSlugs returns every issued slug, active or not.
	ListSlugs(ctx context.Context) ([]string, error)
}

// TenantLookup resolves a slug to a tenant for request routing.
//
// Implementations return errs.ObjectNotFoundError when no tenant owns the slug.
// Inactive tenants are returned as they are; the caller decides what to do with them.
// Implementations must honor ctx cancellation.
type TenantLookup interface {
	FindTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)
}

// TenantCacheInvalidator drops cached lookups after a tenant changes.
type TenantCacheInvalidator interface {
	Evict(ctx context.Context, slug string) error
}
