package http

import (
	"time"

	"siparisqr/internal/core/application/usecases/queries"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewTenant struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type Tenant struct {
	ID          openapi_types.UUID `json:"id"`
	Slug        string             `json:"slug"`
	DisplayName string             `json:"displayName"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type SlugAvailability struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

type SlugSuggestions struct {
	Primary     string   `json:"primary"`
	Suggestions []string `json:"suggestions"`
}

type OrderLine struct {
	ProductID openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

type NewOrder struct {
	TableID      openapi_types.UUID `json:"tableId"`
	Items        []OrderLine        `json:"items"`
	CustomerName string             `json:"customerName,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

type OrderItem struct {
	ProductID   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	UnitPrice   string             `json:"unitPrice"`
	LineTotal   string             `json:"lineTotal"`
}

type Order struct {
	ID           openapi_types.UUID `json:"id"`
	TableID      openapi_types.UUID `json:"tableId"`
	Status       string             `json:"status"`
	Items        []OrderItem        `json:"items"`
	Total        string             `json:"total"`
	CustomerName string             `json:"customerName,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type StatusChange struct {
	Status         string  `json:"status"`
	ExpectedStatus *string `json:"expectedStatus,omitempty"`
}

type Snapshot struct {
	Orders           []Order   `json:"orders"`
	TakenAt          time.Time `json:"takenAt"`
	PollAfterSeconds int       `json:"pollAfterSeconds"`
}

type NewTable struct {
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

type TablePatch struct {
	Number   *string `json:"number,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type Table struct {
	ID        openapi_types.UUID `json:"id"`
	Number    string             `json:"number"`
	Capacity  int                `json:"capacity"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"createdAt"`
}

type MenuProduct struct {
	ID    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Price string             `json:"price"`
}

type Menu struct {
	Table    *Table        `json:"table,omitempty"`
	Products []MenuProduct `json:"products"`
}

type DashboardStats struct {
	OrdersThisMonth  int64     `json:"ordersThisMonth"`
	RevenueThisMonth string    `json:"revenueThisMonth"`
	ActiveOrders     int64     `json:"activeOrders"`
	Tables           int64     `json:"tables"`
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
}

func toTenant(t *tenant.Tenant) Tenant {
	return Tenant{
		ID:          t.ID().Bytes(),
		Slug:        t.Slug().String(),
		DisplayName: t.DisplayName(),
		Active:      t.IsActive(),
		CreatedAt:   t.CreatedAt(),
	}
}

func toOrder(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		lineTotal, _ := item.LineTotal()
		items = append(items, OrderItem{
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			LineTotal:   lineTotal.String(),
		})
	}

	return Order{
		ID:           o.ID().Bytes(),
		TableID:      o.TableID().Bytes(),
		Status:       o.Status().String(),
		Items:        items,
		Total:        o.Total().String(),
		CustomerName: o.CustomerName(),
		Notes:        o.Notes(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toTable(t *table.Table) Table {
	return Table{
		ID:        t.ID().Bytes(),
		Number:    t.Number(),
		Capacity:  t.Capacity(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt(),
	}
}

func toSnapshot(s queries.OrderSnapshot) Snapshot {
	return Snapshot{
		Orders:           toOrders(s.Orders),
		TakenAt:          s.TakenAt,
		PollAfterSeconds: int(s.PollAfter.Seconds()),
	}
}

func toMenu(m queries.Menu) Menu {
	response := Menu{Products: make([]MenuProduct, len(m.Products))}
	if m.Table != nil {
		t := toTable(m.Table)
		response.Table = &t
	}
	for i, p := range m.Products {
		response.Products[i] = MenuProduct{
			ID:    p.ID().Bytes(),
			Name:  p.Name(),
			Price: p.Price().String(),
		}
	}
	return response
}

func toDashboardStats(s queries.DashboardStats) DashboardStats {
	return DashboardStats{
		OrdersThisMonth:  s.OrdersThisMonth,
		RevenueThisMonth: s.RevenueThisMonth.String(),
		ActiveOrders:     s.ActiveOrders,
		Tables:           s.Tables,
		From:             s.From,
		To:               s.To,
	}
}
