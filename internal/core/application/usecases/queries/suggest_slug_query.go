package queries

import (
	"errors"
	"strings"

	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrSuggestSlugQueryIsNotConstructed = errors.New(
	"SuggestSlugQuery must be created via NewSuggestSlugQuery constructor",
)

// SuggestSlugQuery proposes free slugs for a restaurant name.
type SuggestSlugQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewSuggestSlugQuery(name string) (SuggestSlugQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SuggestSlugQuery{}, errs.NewValueIsRequiredError("name")
	}
	return SuggestSlugQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (q SuggestSlugQuery) Validate() error {
	return q.guard.Validate(ErrSuggestSlugQueryIsNotConstructed)
}

func (q SuggestSlugQuery) Name() string {
	return q.name
}

// SlugSuggestions holds the slug registration would issue for the name and a
// few free alternatives. Primary is always the first suggestion.
type SlugSuggestions struct {
	Primary     string
	Suggestions []string
}
