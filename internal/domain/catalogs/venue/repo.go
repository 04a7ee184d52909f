package venue

import (
	"context"

	"barstock/internal/core/id"
	"barstock/internal/domain"
)

// Repository defines the interface for Venue persistence.
// Venues are not venue-scoped themselves, so this does not reuse the
// generic CatalogRepository.
type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id id.ID) (*Venue, error)
	Update(ctx context.Context, v *Venue) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error

	// List returns venues restricted to the given IDs (the caller passes the
	// authenticated user's memberships); empty ids means no restriction.
	List(ctx context.Context, ids []id.ID, filter domain.ListFilter) (domain.ListResult[*Venue], error)
}
