package commands_test

import (
	"testing"

	"siparisqr/internal/core/application/usecases/commands"
	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, tenantID kernel.UUID, name string, major int64, available bool) *catalog.Product {
	t.Helper()
	price, err := kernel.MoneyFromMajor(major)
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), tenantID, name, price, available)
	require.NoError(t, err)
	return p
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	tbl := newTable(t, tenantID, "1")
	americano := newProduct(t, tenantID, "Americano", 25, true)

	cat := new(MockCatalog)
	cat.On("GetProduct", ctx, tenantID, americano.ID()).Return(americano, nil).Once()

	tables := new(MockTableRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tables).Once(),
		tables.On("Get", ctx, tenantID, tbl.ID()).Return(tbl, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, tbl.ID(),
		[]commands.OrderLine{{ProductID: americano.ID(), Quantity: 2}}, "Ayse", "no sugar")
	require.NoError(t, err)
	h := commands.NewCreateOrderCommandHandler(factory, cat)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, "50.00", o.Total().String())
	require.Len(t, o.Items(), 1)
	assert.Equal(t, "Americano", o.Items()[0].ProductName())
	assert.Equal(t, "Ayse", o.CustomerName())
	cat.AssertExpectations(t)
	tables.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_TotalIsFrozen(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	tbl := newTable(t, tenantID, "1")
	tea := newProduct(t, tenantID, "Cay", 5, true)

	cat := new(MockCatalog)
	cat.On("GetProduct", ctx, tenantID, tea.ID()).Return(tea, nil).Once()
	tables := new(MockTableRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TableRepository").Return(tables)
	uow.On("OrderRepository").Return(orders)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	tables.On("Get", ctx, tenantID, tbl.ID()).Return(tbl, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(nil).Once()

	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, tbl.ID(),
		[]commands.OrderLine{{ProductID: tea.ID(), Quantity: 3}}, "", "")
	h := commands.NewCreateOrderCommandHandler(factory, cat)
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	tea.ChangePrice(kernel.Zero())

	assert.Equal(t, "15.00", o.Total().String())
	assert.Equal(t, "5.00", o.Items()[0].UnitPrice().String())
}

func TestCreateOrderCommandHandler_CatalogErrors(t *testing.T) {
	tenantID := kernel.NewUUID()
	foreign := newProduct(t, kernel.NewUUID(), "Foreign", 10, true)
	soldOut := newProduct(t, tenantID, "Sold Out", 10, false)
	missingID := kernel.NewUUID()

	tests := []struct {
		name      string
		productID kernel.UUID
		product   *catalog.Product
		err       error
		want      error
	}{
		{"another tenant", foreign.ID(), foreign, nil, errs.ErrForbidden},
		{"unavailable", soldOut.ID(), soldOut, nil, errs.ErrValueIsInvalid},
		{"missing", missingID, nil, errs.NewObjectNotFoundError("product", missingID), errs.ErrObjectNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cat := new(MockCatalog)
			cat.On("GetProduct", ctx, tenantID, tt.productID).Return(tt.product, tt.err).Once()
			factory := new(MockOrderUoWFactory)

			cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, kernel.NewUUID(),
				[]commands.OrderLine{{ProductID: tt.productID, Quantity: 1}}, "", "")
			require.NoError(t, err)
			h := commands.NewCreateOrderCommandHandler(factory, cat)
			_, err = h.Handle(ctx, cmd)

			assert.ErrorIs(t, err, tt.want)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateOrderCommandHandler_InactiveTable(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	tbl := newTable(t, tenantID, "4")
	tbl.Deactivate()
	p := newProduct(t, tenantID, "Ayran", 8, true)

	cat := new(MockCatalog)
	cat.On("GetProduct", ctx, tenantID, p.ID()).Return(p, nil).Once()
	tables := new(MockTableRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TableRepository").Return(tables)
	uow.On("OrderRepository").Return(orders)
	uow.On("Rollback", ctx).Return(nil).Once()
	tables.On("Get", ctx, tenantID, tbl.ID()).Return(tbl, nil).Once()

	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, tbl.ID(),
		[]commands.OrderLine{{ProductID: p.ID(), Quantity: 1}}, "", "")
	h := commands.NewCreateOrderCommandHandler(factory, cat)
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		lines []commands.OrderLine
		want  error
	}{
		{"no lines", nil, errs.ErrValueIsRequired},
		{"zero quantity", []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 0}}, errs.ErrValueIsOutOfRange},
		{"too many", []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 100}}, errs.ErrValueIsOutOfRange},
		{"no product", []commands.OrderLine{{Quantity: 1}}, errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), tt.lines, "", "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
