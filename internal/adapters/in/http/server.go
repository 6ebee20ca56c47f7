package http

import (
	"net/http"
	"time"

	"siparisqr/internal/core/application/usecases/commands"
	"siparisqr/internal/core/application/usecases/queries"
	"siparisqr/internal/core/domain/model/cart"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterTenant    commands.RegisterTenantCommandHandler
	DeactivateTenant  commands.DeactivateTenantCommandHandler
	CreateTable       commands.CreateTableCommandHandler
	UpdateTable       commands.UpdateTableCommandHandler
	DeleteTable       commands.DeleteTableCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler

	CheckSlug         queries.CheckSlugQueryHandler
	SuggestSlug       queries.SuggestSlugQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	OrderSnapshot     queries.OrderSnapshotQueryHandler
	ListTables        queries.ListTablesQueryHandler
	ListMenu          queries.ListMenuQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
}

// Server implements the operations of openapi.yaml on top of the use cases.
type Server struct {
	h   Handlers
	now func() time.Time
}

func NewServer(h Handlers) *Server {
	return &Server{h: h, now: time.Now}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterTenant handles POST /api/v1/tenants on the portal host.
func (s *Server) RegisterTenant(ctx echo.Context) error {
	var body NewTenant
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterTenantCommand(kernel.NewUUID(), body.Name, body.Slug)
	if err != nil {
		return err
	}
	t, err := s.h.RegisterTenant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toTenant(t))
}

// DeactivateTenant handles POST /api/v1/tenants/{tenantId}/deactivate on the admin host.
func (s *Server) DeactivateTenant(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeactivateTenantCommand(tenantID)
	if err != nil {
		return err
	}
	if err := s.h.DeactivateTenant.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CheckSlug handles GET /api/v1/slugs/check?slug=.
func (s *Server) CheckSlug(ctx echo.Context) error {
	var slug string
	if err := runtime.BindQueryParameter("form", true, true, "slug", ctx.QueryParams(), &slug); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewCheckSlugQuery(slug)
	if err != nil {
		return err
	}
	availability, err := s.h.CheckSlug.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SlugAvailability{
		Slug:      availability.Slug,
		Available: availability.Available,
		Reason:    string(availability.Reason),
	})
}

// SuggestSlug handles GET /api/v1/slugs/suggest?name=.
func (s *Server) SuggestSlug(ctx echo.Context) error {
	var name string
	if err := runtime.BindQueryParameter("form", true, true, "name", ctx.QueryParams(), &name); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewSuggestSlugQuery(name)
	if err != nil {
		return err
	}
	suggestions, err := s.h.SuggestSlug.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SlugSuggestions{
		Primary:     suggestions.Primary,
		Suggestions: suggestions.Suggestions,
	})
}

// CreateOrder handles POST /api/v1/orders. Lines naming the same product are
// merged before the order is placed.
func (s *Server) CreateOrder(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	basket := cart.New()
	for _, line := range body.Items {
		productID, err := kernel.UUIDFromBytes(line.ProductID[:])
		if err != nil {
			return err
		}
		// The guest-facing price is not trusted; the catalog prices the order.
		if err := basket.Add(productID, kernel.Zero(), line.Quantity); err != nil {
			return err
		}
	}
	lines := make([]commands.OrderLine, 0, len(basket.Lines()))
	for _, l := range basket.Lines() {
		lines = append(lines, commands.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	tableID, err := kernel.UUIDFromBytes(body.TableID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, tableID, lines, body.CustomerName, body.Notes)
	if err != nil {
		return err
	}
	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/v1/orders?status=..
func (s *Server) ListOrders(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	statuses, err := statusFilter(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(tenantID, statuses...)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(tenantID, orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status. The expected
// current status comes from the body or, failing that, from If-Match.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}
	expectedLiteral := body.ExpectedStatus
	if expectedLiteral == nil {
		if h := ctx.Request().Header.Get("If-Match"); h != "" {
			expectedLiteral = &h
		}
	}
	var expected *order.Status
	if expectedLiteral != nil {
		e, err := order.ParseStatus(*expectedLiteral)
		if err != nil {
			return err
		}
		expected = &e
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(tenantID, orderID, target, expected)
	if err != nil {
		return err
	}
	o, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetKitchenSnapshot handles GET /api/v1/kitchen/snapshot.
func (s *Server) GetKitchenSnapshot(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	statuses, err := statusFilter(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewOrderSnapshotQuery(tenantID, statuses...)
	if err != nil {
		return err
	}
	snapshot, err := s.h.OrderSnapshot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSnapshot(snapshot))
}

// ListTables handles GET /api/v1/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListTablesQuery(tenantID)
	if err != nil {
		return err
	}
	tables, err := s.h.ListTables.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Table, len(tables))
	for i, t := range tables {
		response[i] = toTable(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	var body NewTable
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), tenantID, body.Number, body.Capacity)
	if err != nil {
		return err
	}
	t, err := s.h.CreateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toTable(t))
}

// UpdateTable handles PATCH /api/v1/tables/{tableId}.
func (s *Server) UpdateTable(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	tableID, err := pathUUID(ctx, "tableId")
	if err != nil {
		return err
	}
	var body TablePatch
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTableCommand(tenantID, tableID, commands.TableChanges{
		Number:   body.Number,
		Capacity: body.Capacity,
		Active:   body.Active,
	})
	if err != nil {
		return err
	}
	t, err := s.h.UpdateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTable(t))
}

// DeleteTable handles DELETE /api/v1/tables/{tableId}.
func (s *Server) DeleteTable(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	tableID, err := pathUUID(ctx, "tableId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteTableCommand(tenantID, tableID)
	if err != nil {
		return err
	}
	if err := s.h.DeleteTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu?table=. With a table number the table must be
// active, otherwise the answer is 404.
func (s *Server) GetMenu(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}
	var tableNumber *string
	if err := runtime.BindQueryParameter("form", true, false, "table", ctx.QueryParams(), &tableNumber); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	number := ""
	if tableNumber != nil {
		number = *tableNumber
	}
	query, err := queries.NewListMenuQuery(tenantID, number)
	if err != nil {
		return err
	}
	menu, err := s.h.ListMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMenu(menu))
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	tenantID, err := tenantOf(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardStatsQuery(tenantID, s.now())
	if err != nil {
		return err
	}
	stats, err := s.h.GetDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDashboardStats(stats))
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": "+err.Error())
	}
	return kernel.UUIDFromBytes(id[:])
}

func statusFilter(ctx echo.Context) ([]order.Status, error) {
	var literals *[]string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &literals); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if literals == nil {
		return nil, nil
	}

	statuses := make([]order.Status, 0, len(*literals))
	for _, l := range *literals {
		s, err := order.ParseStatus(l)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
