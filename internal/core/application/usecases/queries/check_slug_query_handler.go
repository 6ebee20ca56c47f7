package queries

import (
	"context"

	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"
)

// CheckSlugQueryHandler checks format first, then the reserved list, then the
// store. Only the last step reads data.
type CheckSlugQueryHandler struct {
	reader ports.SlugReader
}

func NewCheckSlugQueryHandler(reader ports.SlugReader) CheckSlugQueryHandler {
	return CheckSlugQueryHandler{reader: reader}
}

func (h CheckSlugQueryHandler) Handle(ctx context.Context, query CheckSlugQuery) (SlugAvailability, error) {
	if err := query.Validate(); err != nil {
		return SlugAvailability{}, err
	}

	slug := query.Slug()
	switch {
	case !tenant.IsValidSlug(slug):
		return SlugAvailability{Slug: slug, Reason: SlugInvalid}, nil
	case tenant.IsReserved(slug):
		return SlugAvailability{Slug: slug, Reason: SlugReserved}, nil
	}

	exists, err := h.reader.SlugExists(ctx, slug)
	if err != nil {
		return SlugAvailability{}, err
	}
	if exists {
		return SlugAvailability{Slug: slug, Reason: SlugTaken}, nil
	}
	return SlugAvailability{Slug: slug, Available: true, Reason: SlugAvailable}, nil
}
