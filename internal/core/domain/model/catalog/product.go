// Package catalog holds the read model of a tenant's menu products as seen by
// ordering. Menu editing happens elsewhere; orders only need the current price
// and availability.
package catalog

import (
	"errors"
	"strings"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu entry of one tenant.
type Product struct {
	id        kernel.UUID
	tenantID  kernel.UUID
	name      string
	price     kernel.Money
	available bool

	isConstructed bool
}

func NewProduct(id, tenantID kernel.UUID, name string, price kernel.Money, available bool) (*Product, error) {
	p := &Product{price: price, available: available, isConstructed: true}

	var nameErr error
	if p.name = strings.TrimSpace(name); p.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	var tenantErr error
	if tenantID.IsZero() {
		tenantErr = errs.NewValueIsRequiredError("tenantID")
	}
	if err := errors.Join(id.Validate(), tenantErr, nameErr); err != nil {
		return nil, err
	}
	p.id = id
	p.tenantID = tenantID
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) TenantID() kernel.UUID { return p.tenantID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Price() kernel.Money   { return p.price }
func (p *Product) IsAvailable() bool     { return p.available }

// BelongsTo reports whether the product is on tenantID's menu.
func (p *Product) BelongsTo(tenantID kernel.UUID) bool {
	return p.tenantID.IsEqual(tenantID)
}

// ChangePrice sets the menu price. Orders already placed keep their own snapshot.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

func (p *Product) SetAvailable(available bool) {
	p.available = available
}
