// Package commands contains the operations that change tenants, tables and orders.
// Every command is validated at construction, and every handler runs its changes
// inside one unit of work: all of them are committed or none is.
package commands

import (
	"context"

	"siparisqr/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TenantUoW is used by tenant registration and deactivation.
	TenantUoW interface {
		TxManager
		TenantRepoFactory
	}

	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// TableUoW is used by table creation and edits.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}

	// OrderUoW spans tables and orders: placing an order checks its table, and
	// deleting a table checks its orders.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   tbl, err := uow.TableRepository().Get(ctx, tenantID, tableID)
	//   // ...
	//   err = uow.OrderRepository().Add(ctx, o)
	//   // ...
	//   return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SeedUoW touches every aggregate; it is used to load demo data.
	SeedUoW interface {
		TxManager
		TenantRepoFactory
		TableRepoFactory
		ProductRepoFactory
	}

	SeedUoWFactory interface {
		Create() SeedUoW
	}
)
