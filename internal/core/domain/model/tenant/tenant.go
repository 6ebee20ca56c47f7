package tenant

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
)

// MaxDisplayNameLength bounds the restaurant name in characters.
const MaxDisplayNameLength = 100

// ErrTenantIsNotConstructed is returned when a Tenant was not built by NewTenant or RestoreTenant.
var ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant constructor")

// Tenant is one restaurant account. Its slug is issued at registration and never
// changes; a tenant is never deleted, only deactivated.
type Tenant struct {
	id          kernel.UUID
	slug        Slug
	displayName string
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewTenant registers an active tenant.
func NewTenant(id kernel.UUID, slug Slug, displayName string, createdAt time.Time) (*Tenant, error) {
	return RestoreTenant(id, slug, displayName, true, createdAt)
}

// RestoreTenant rebuilds a tenant from storage.
func RestoreTenant(id kernel.UUID, slug Slug, displayName string, active bool, createdAt time.Time) (*Tenant, error) {
	t := &Tenant{active: active, createdAt: createdAt.UTC(), isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setSlug(slug),
		t.setDisplayName(displayName),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}
	return nil
}

func (t *Tenant) ID() kernel.UUID      { return t.id }
func (t *Tenant) Slug() Slug           { return t.slug }
func (t *Tenant) DisplayName() string  { return t.displayName }
func (t *Tenant) IsActive() bool       { return t.active }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }

// Deactivate takes the tenant offline. Its subdomain stops resolving and the slug
// stays taken. Deactivating an inactive tenant is a no-op.
func (t *Tenant) Deactivate() {
	t.active = false
}

func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tenant) setSlug(slug Slug) error {
	if slug.IsZero() {
		return errs.NewValueIsRequiredError("slug")
	}
	t.slug = slug
	return nil
}

func (t *Tenant) setDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	if n := utf8.RuneCountInString(name); n > MaxDisplayNameLength {
		return errs.NewValueIsOutOfRangeError("displayName length", n, 1, MaxDisplayNameLength)
	}
	t.displayName = name
	return nil
}
