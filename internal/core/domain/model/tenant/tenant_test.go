package tenant_test

import (
	"strings"
	"testing"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	slug, err := tenant.NewSlug("kahveduragi")
	require.NoError(t, err)
	id := kernel.NewUUID()
	now := time.Now()

	tn, err := tenant.NewTenant(id, slug, "  Kahve Durağı ", now)

	require.NoError(t, err)
	assert.NoError(t, tn.Validate())
	assert.True(t, tn.ID().IsEqual(id))
	assert.Equal(t, "kahveduragi", tn.Slug().String())
	assert.Equal(t, "Kahve Durağı", tn.DisplayName())
	assert.True(t, tn.IsActive())
	assert.True(t, now.Equal(tn.CreatedAt()))
}

func TestNewTenant_JoinsFieldErrors(t *testing.T) {
	_, err := tenant.NewTenant(kernel.UUID{}, tenant.Slug{}, " ", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "displayName")
	assert.Contains(t, err.Error(), "slug")
}

func TestNewTenant_DisplayNameTooLong(t *testing.T) {
	slug, _ := tenant.NewSlug("acme")

	_, err := tenant.NewTenant(kernel.NewUUID(), slug, strings.Repeat("ş", tenant.MaxDisplayNameLength+1), time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTenant_Deactivate(t *testing.T) {
	slug, _ := tenant.NewSlug("acme")
	tn, err := tenant.RestoreTenant(kernel.NewUUID(), slug, "Acme", true, time.Now())
	require.NoError(t, err)

	tn.Deactivate()
	tn.Deactivate()

	assert.False(t, tn.IsActive())
	assert.Equal(t, "acme", tn.Slug().String())
}

func TestTenant_ZeroValueIsNotConstructed(t *testing.T) {
	var tn *tenant.Tenant
	assert.ErrorIs(t, tn.Validate(), tenant.ErrTenantIsNotConstructed)
	assert.ErrorIs(t, (&tenant.Tenant{}).Validate(), tenant.ErrTenantIsNotConstructed)
}
