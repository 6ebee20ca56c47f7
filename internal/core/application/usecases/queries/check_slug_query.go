package queries

import (
	"errors"
	"strings"

	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrCheckSlugQueryIsNotConstructed = errors.New(
	"CheckSlugQuery must be created via NewCheckSlugQuery constructor",
)

// CheckSlugQuery tells the registration portal whether a slug can be claimed.
type CheckSlugQuery struct {
	slug string

	guard guard.ConstructorGuard
}

func NewCheckSlugQuery(slug string) (CheckSlugQuery, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return CheckSlugQuery{}, errs.NewValueIsRequiredError("slug")
	}
	return CheckSlugQuery{slug: slug, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckSlugQuery) Validate() error {
	return q.guard.Validate(ErrCheckSlugQueryIsNotConstructed)
}

func (q CheckSlugQuery) Slug() string {
	return q.slug
}

// SlugReason explains a CheckSlugQuery answer.
type SlugReason string

const (
	SlugAvailable SlugReason = "available"
	SlugInvalid   SlugReason = "invalid"
	SlugReserved  SlugReason = "reserved"
	SlugTaken     SlugReason = "taken"
)

type SlugAvailability struct {
	Slug      string
	Available bool
	Reason    SlugReason
}
