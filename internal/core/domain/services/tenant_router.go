package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"
)

// RouteKind classifies an inbound host.
type RouteKind int

const (
	RouteNotFound RouteKind = iota
	RouteRoot
	RoutePortal
	RouteAdmin
	RouteTenant
)

func (k RouteKind) String() string {
	switch k {
	case RouteRoot:
		return "root"
	case RoutePortal:
		return "portal"
	case RouteAdmin:
		return "admin"
	case RouteTenant:
		return "tenant"
	default:
		return "not_found"
	}
}

// RouteDecision is the outcome of TenantRouter.Route. TenantID and Slug are set
// for RouteTenant only.
type RouteDecision struct {
	Kind     RouteKind
	TenantID kernel.UUID
	Slug     string
}

// ErrTenantLookupFailed is matched by every TenantLookupError.
var ErrTenantLookupFailed = errors.New("tenant lookup failed")

// TenantLookupError reports a lookup that neither found nor ruled out a tenant:
// a storage failure or an expired deadline. It matches both ErrTenantLookupFailed
// and its cause.
type TenantLookupError struct {
	Slug  string
	Cause error
}

func (e *TenantLookupError) Error() string {
	return fmt.Sprintf("%s: slug %q: %v", ErrTenantLookupFailed, e.Slug, e.Cause)
}

func (e *TenantLookupError) Unwrap() []error {
	return []error{ErrTenantLookupFailed, e.Cause}
}

// RouterConfig describes the host names the platform answers on.
type RouterConfig struct {
	// RootDomain is the bare platform domain, e.g. "siparisqr.com".
	RootDomain string
	// Aliases are extra root domains such as "localhost" for development.
	// Subdomains of an alias route like subdomains of RootDomain.
	Aliases []string
	// PortalLabel is the customer portal label, "portal" by default.
	PortalLabel string
	// AdminLabels are back-office labels, "admin" and "yonetim" by default.
	AdminLabels []string
	// LookupTimeout bounds a single tenant lookup. Zero means the request deadline only.
	LookupTimeout time.Duration
}

// TenantRouter decides which tenant, if any, a request host belongs to.
//
// Algorithm:
//  1. A bare root domain or alias routes to RouteRoot.
//  2. A portal or admin label routes to RoutePortal or RouteAdmin without any lookup.
//  3. Any other single label is a slug candidate. Invalid or reserved candidates
//     route to RouteNotFound; a reserved label never falls back to the root site.
//  4. The candidate is looked up. Unknown or inactive tenants route to RouteNotFound.
//
// Hosts outside the configured domains, and hosts with more than one label in
// front of the root, route to RouteNotFound. Route has no side effects besides
// the lookup call and is safe for concurrent use.
type TenantRouter struct {
	roots       []string
	portalLabel string
	adminLabels []string
	timeout     time.Duration
	lookup      ports.TenantLookup
}

// NewTenantRouter validates cfg and fills in the default labels.
func NewTenantRouter(cfg RouterConfig, lookup ports.TenantLookup) (*TenantRouter, error) {
	root := normalizeHost(cfg.RootDomain)
	if root == "" {
		return nil, errs.NewValueIsRequiredError("rootDomain")
	}
	if lookup == nil {
		return nil, errs.NewValueIsRequiredError("tenantLookup")
	}

	roots := []string{root}
	for _, alias := range cfg.Aliases {
		if a := normalizeHost(alias); a != "" {
			roots = append(roots, a)
		}
	}

	portal := strings.ToLower(strings.TrimSpace(cfg.PortalLabel))
	if portal == "" {
		portal = "portal"
	}
	admin := make([]string, 0, len(cfg.AdminLabels))
	for _, l := range cfg.AdminLabels {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			admin = append(admin, l)
		}
	}
	if len(admin) == 0 {
		admin = []string{"admin", "yonetim"}
	}

	return &TenantRouter{
		roots:       roots,
		portalLabel: portal,
		adminLabels: admin,
		timeout:     cfg.LookupTimeout,
		lookup:      lookup,
	}, nil
}

// Route classifies host. An error is returned only when the tenant lookup fails
// or ctx expires; the decision is then RouteNotFound and must not be served.
func (r *TenantRouter) Route(ctx context.Context, host string) (RouteDecision, error) {
	notFound := RouteDecision{Kind: RouteNotFound}

	host = strings.TrimSuffix(stripPort(strings.TrimSpace(host)), ".")
	label, ok := r.splitLabel(host)
	if !ok {
		return notFound, nil
	}
	if label == "" {
		return RouteDecision{Kind: RouteRoot}, nil
	}

	if strings.EqualFold(label, r.portalLabel) {
		return RouteDecision{Kind: RoutePortal}, nil
	}
	for _, admin := range r.adminLabels {
		if strings.EqualFold(label, admin) {
			return RouteDecision{Kind: RouteAdmin}, nil
		}
	}

	// Slugs are matched as written: an upper-case label is not a valid slug.
	if !tenant.IsValidSlug(label) || tenant.IsReserved(label) {
		return notFound, nil
	}

	t, err := r.find(ctx, label)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound, nil
	}
	if err != nil {
		return notFound, &TenantLookupError{Slug: label, Cause: err}
	}
	if t == nil || !t.IsActive() {
		return notFound, nil
	}
	return RouteDecision{Kind: RouteTenant, TenantID: t.ID(), Slug: label}, nil
}

// splitLabel returns "" for a bare root, the single label in front of a root, or
// ok=false when host is not served.
func (r *TenantRouter) splitLabel(host string) (string, bool) {
	for _, root := range r.roots {
		if strings.EqualFold(host, root) {
			return "", true
		}
	}
	for _, root := range r.roots {
		n := len(host) - len(root)
		if n < 2 || host[n-1] != '.' || !strings.EqualFold(host[n:], root) {
			continue
		}
		label := host[:n-1]
		if strings.Contains(label, ".") {
			return "", false
		}
		return label, true
	}
	return "", false
}

type lookupResult struct {
	tenant *tenant.Tenant
	err    error
}

// find runs the lookup so that a collaborator ignoring ctx cannot hang the router.
func (r *TenantRouter) find(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	done := make(chan lookupResult, 1)
	go func() {
		t, err := r.lookup.FindTenantBySlug(ctx, slug)
		done <- lookupResult{tenant: t, err: err}
	}()

	select {
	case res := <-done:
		return res.tenant, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
}

func stripPort(host string) string {
	if !strings.Contains(host, ":") {
		return host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
