package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/domain/services"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	tenants map[string]*tenant.Tenant
	err     error
	block   bool
	calls   atomic.Int32
}

func (s *stubLookup) FindTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	s.calls.Add(1)
	if s.block {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return nil, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.tenants[slug]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tenant", slug)
	}
	return t, nil
}

func newTenant(t *testing.T, slug string, active bool) *tenant.Tenant {
	t.Helper()
	s, err := tenant.NewSlug(slug)
	require.NoError(t, err)
	tn, err := tenant.RestoreTenant(kernel.NewUUID(), s, slug, active, time.Now())
	require.NoError(t, err)
	return tn
}

func newRouter(t *testing.T, lookup *stubLookup) *services.TenantRouter {
	t.Helper()
	r, err := services.NewTenantRouter(services.RouterConfig{
		RootDomain: "root.com",
		Aliases:    []string{"localhost"},
	}, lookup)
	require.NoError(t, err)
	return r
}

func TestTenantRouter_Route(t *testing.T) {
	acme := newTenant(t, "acme", true)
	closed := newTenant(t, "closed", false)
	lookup := &stubLookup{tenants: map[string]*tenant.Tenant{"acme": acme, "closed": closed}}
	router := newRouter(t, lookup)

	tests := []struct {
		host string
		want services.RouteKind
	}{
		{"root.com", services.RouteRoot},
		{"ROOT.com:443", services.RouteRoot},
		{"root.com.", services.RouteRoot},
		{"localhost:3000", services.RouteRoot},
		{"portal.root.com", services.RoutePortal},
		{"admin.root.com", services.RouteAdmin},
		{"yonetim.root.com", services.RouteAdmin},
		{"acme.root.com", services.RouteTenant},
		{"acme.root.com:8080", services.RouteTenant},
		{"acme.localhost:3000", services.RouteTenant},
		{"XX!.root.com", services.RouteNotFound},
		{"ACME.root.com", services.RouteNotFound},
		{"www.root.com", services.RouteNotFound},
		{"api.root.com", services.RouteNotFound},
		{"ab.root.com", services.RouteNotFound},
		{"closed.root.com", services.RouteNotFound},
		{"unknown.root.com", services.RouteNotFound},
		{"x.acme.root.com", services.RouteNotFound},
		{"acme.other.com", services.RouteNotFound},
		{"evilroot.com", services.RouteNotFound},
		{"", services.RouteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got, err := router.Route(t.Context(), tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Kind, got.Kind.String())
		})
	}
}

func TestTenantRouter_TenantDecision(t *testing.T) {
	acme := newTenant(t, "acme", true)
	router := newRouter(t, &stubLookup{tenants: map[string]*tenant.Tenant{"acme": acme}})

	got, err := router.Route(t.Context(), "acme.root.com")

	require.NoError(t, err)
	assert.Equal(t, services.RouteTenant, got.Kind)
	assert.True(t, got.TenantID.IsEqual(acme.ID()))
	assert.Equal(t, "acme", got.Slug)
}

func TestTenantRouter_OperationalLabelsSkipLookup(t *testing.T) {
	lookup := &stubLookup{err: errors.New("must not be called")}
	router := newRouter(t, lookup)

	for _, host := range []string{"root.com", "portal.root.com", "admin.root.com", "www.root.com", "XX!.root.com"} {
		_, err := router.Route(t.Context(), host)
		require.NoError(t, err, host)
	}
	assert.Zero(t, lookup.calls.Load())
}

func TestTenantRouter_CustomLabels(t *testing.T) {
	router, err := services.NewTenantRouter(services.RouterConfig{
		RootDomain:  "Root.com.",
		PortalLabel: "Kayit",
		AdminLabels: []string{"backoffice"},
	}, &stubLookup{})
	require.NoError(t, err)

	got, err := router.Route(t.Context(), "kayit.root.com")
	require.NoError(t, err)
	assert.Equal(t, services.RoutePortal, got.Kind)

	got, err = router.Route(t.Context(), "backoffice.root.com")
	require.NoError(t, err)
	assert.Equal(t, services.RouteAdmin, got.Kind)

	got, err = router.Route(t.Context(), "admin.root.com")
	require.NoError(t, err)
	assert.Equal(t, services.RouteNotFound, got.Kind)
}

func TestTenantRouter_LookupFailure(t *testing.T) {
	cause := errors.New("connection refused")
	router := newRouter(t, &stubLookup{err: cause})

	got, err := router.Route(t.Context(), "acme.root.com")

	assert.Equal(t, services.RouteNotFound, got.Kind)
	var lookupErr *services.TenantLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "acme", lookupErr.Slug)
	assert.ErrorIs(t, err, services.ErrTenantLookupFailed)
	assert.ErrorIs(t, err, cause)
}

func TestTenantRouter_LookupTimeout(t *testing.T) {
	router, err := services.NewTenantRouter(services.RouterConfig{
		RootDomain:    "root.com",
		LookupTimeout: 20 * time.Millisecond,
	}, &stubLookup{block: true})
	require.NoError(t, err)

	start := time.Now()
	_, err = router.Route(t.Context(), "acme.root.com")

	assert.ErrorIs(t, err, services.ErrTenantLookupFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTenantRouter_ExpiredContext(t *testing.T) {
	lookup := &stubLookup{}
	router := newRouter(t, lookup)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := router.Route(ctx, "acme.root.com")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, lookup.calls.Load())
}

func TestNewTenantRouter_Invalid(t *testing.T) {
	_, err := services.NewTenantRouter(services.RouterConfig{}, &stubLookup{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewTenantRouter(services.RouterConfig{RootDomain: "root.com"}, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRouteKind_String(t *testing.T) {
	assert.Equal(t, "tenant", services.RouteTenant.String())
	assert.Equal(t, "not_found", services.RouteNotFound.String())
	assert.Equal(t, "admin", services.RouteAdmin.String())
}
