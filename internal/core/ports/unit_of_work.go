package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Either every change made through
// its repositories becomes visible at Commit or none does.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback discards pending changes. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	TenantRepository() TenantRepository
	TableRepository() TableRepository
	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
}
