package ports

import (
	"context"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
)

// TableRepository stores the tables of all tenants. Every method is scoped by
// tenant: a table of another tenant is reported as not found.
type TableRepository interface {
	// Add persists a table. A number already used by a live table of the same
	// tenant yields errs.ObjectConflictError, also under concurrent creation.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists number, capacity and active flag with the same uniqueness rule as Add.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get returns the table and keeps it from being deleted until the unit of work ends.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error)

	// Delete removes the table from listings; the number becomes free again.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}
