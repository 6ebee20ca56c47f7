package commands

import (
	"context"
	"fmt"
	"slices"
	"time"

	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/pkg/errs"
)

// RegisterTenantCommandHandler issues a slug and stores the new tenant.
//
// Slug rules:
//   - desired slug given: must be issuable (valid, not reserved) and free,
//     otherwise ValueIsInvalidError or ObjectConflictError
//   - no desired slug: GenerateSlug(name) cut to MaxSlugLength with TruncateSlug
//     and made unique with GenerateUniqueSlug,
//     ExhaustedError when no candidate is left
//
// Two registrations racing for the same slug are settled by the repository's
// uniqueness check; the loser gets ObjectConflictError.
type RegisterTenantCommandHandler struct {
	uowFactory TenantUoWFactory
	now        func() time.Time
}

func NewRegisterTenantCommandHandler(uowFactory TenantUoWFactory) RegisterTenantCommandHandler {
	return RegisterTenantCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *RegisterTenantCommandHandler) Handle(ctx context.Context, cmd RegisterTenantCommand) (*tenant.Tenant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TenantRepository()
	existing, err := repo.ListSlugs(ctx)
	if err != nil {
		return nil, err
	}

	slug, err := issueSlug(cmd, existing)
	if err != nil {
		return nil, err
	}

	t, err := tenant.NewTenant(cmd.TenantID(), slug, cmd.Name(), h.now())
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, t); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func issueSlug(cmd RegisterTenantCommand, existing []string) (tenant.Slug, error) {
	if desired := cmd.DesiredSlug(); desired != "" {
		slug, err := tenant.NewSlug(desired)
		if err != nil {
			return tenant.Slug{}, err
		}
		if slices.Contains(existing, desired) {
			return tenant.Slug{}, errs.NewObjectConflictError("slug", desired)
		}
		return slug, nil
	}

	base := tenant.TruncateSlug(tenant.GenerateSlug(cmd.Name()), tenant.MaxSlugLength)
	if base == "" {
		return tenant.Slug{}, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q does not contain any slug characters", cmd.Name()))
	}
	unique, err := tenant.GenerateUniqueSlug(base, existing)
	if err != nil {
		return tenant.Slug{}, err
	}
	return tenant.NewSlug(unique)
}
