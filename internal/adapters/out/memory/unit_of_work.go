package memory

import (
	"context"
	"errors"

	"siparisqr/internal/core/ports"
)

var ErrTransactionNotStarted = errors.New("memory: unit of work is not started")

// UnitOfWork is not safe for concurrent use; every command creates its own.
type UnitOfWork struct {
	store  *Store
	active bool
	ops    []op

	// view is the latest published state with this unit's writes applied. It is
	// created on the first write; until then reads go to the published state.
	view *state
}

// Begin is idempotent while the unit of work is active.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.active {
		return nil
	}
	u.active = true
	return nil
}

// Commit publishes every recorded write or none. A cancelled context aborts the
// commit before anything is published.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}
	defer u.reset()

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(u.ops) == 0 {
		return nil
	}
	return u.store.publish(u.ops)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

func (u *UnitOfWork) TenantRepository() ports.TenantRepository   { return tenantRepository{uow: u} }
func (u *UnitOfWork) TableRepository() ports.TableRepository     { return tableRepository{uow: u} }
func (u *UnitOfWork) OrderRepository() ports.OrderRepository     { return orderRepository{uow: u} }
func (u *UnitOfWork) ProductRepository() ports.ProductRepository { return productRepository{uow: u} }

func (u *UnitOfWork) reset() {
	u.active = false
	u.ops = nil
	u.view = nil
}

// record checks the write against the unit's view and keeps it for Commit.
func (u *UnitOfWork) record(ctx context.Context, write op) error {
	if !u.active {
		return ErrTransactionNotStarted
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.view == nil {
		u.view = u.store.snapshot().clone()
	}
	if err := write(u.view); err != nil {
		return err
	}
	u.ops = append(u.ops, write)
	return nil
}

func (u *UnitOfWork) read(ctx context.Context) (*state, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if u.view != nil {
		return u.view, nil
	}
	return u.store.snapshot(), nil
}
