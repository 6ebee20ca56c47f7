package queries

import (
	"context"

	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"
)

type SuggestSlugQueryHandler struct {
	reader ports.SlugReader
}

func NewSuggestSlugQueryHandler(reader ports.SlugReader) SuggestSlugQueryHandler {
	return SuggestSlugQueryHandler{reader: reader}
}

func (h SuggestSlugQueryHandler) Handle(ctx context.Context, query SuggestSlugQuery) (SlugSuggestions, error) {
	if err := query.Validate(); err != nil {
		return SlugSuggestions{}, err
	}

	existing, err := h.reader.ListSlugs(ctx)
	if err != nil {
		return SlugSuggestions{}, err
	}
	primary, suggestions, err := tenant.SuggestSlugs(query.Name(), existing)
	if err != nil {
		return SlugSuggestions{}, err
	}
	return SlugSuggestions{Primary: primary, Suggestions: suggestions}, nil
}
