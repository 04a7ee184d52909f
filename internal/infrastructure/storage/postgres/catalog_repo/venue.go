package catalog_repo

import (
	"context"

	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/venue"
	"barstock/internal/infrastructure/storage/postgres"
)

const venueTable = "venues"

// VenueRepo implements venue.Repository.
type VenueRepo struct {
	base *BaseCatalogRepo[*venue.Venue]
}

// NewVenueRepo creates a new venue repository.
func NewVenueRepo(txm *postgres.TxManager) *VenueRepo {
	return &VenueRepo{
		base: NewBaseCatalogRepo(
			txm,
			venueTable,
			postgres.ExtractDBColumns[venue.Venue](),
			func() *venue.Venue { return &venue.Venue{} },
		),
	}
}

// Create inserts a new venue.
func (r *VenueRepo) Create(ctx context.Context, v *venue.Venue) error {
	return r.base.Create(ctx, v)
}

// GetByID retrieves a venue by ID.
func (r *VenueRepo) GetByID(ctx context.Context, venueID id.ID) (*venue.Venue, error) {
	return r.base.GetByID(ctx, "", venueID)
}

// Update modifies a venue with optimistic locking.
func (r *VenueRepo) Update(ctx context.Context, v *venue.Venue) error {
	return r.base.Update(ctx, v)
}

// SetDeleted sets or clears the soft-delete mark.
func (r *VenueRepo) SetDeleted(ctx context.Context, venueID id.ID, deleted bool) error {
	return r.base.SetDeleted(ctx, "", venueID, deleted)
}

// List retrieves venues restricted to the given IDs.
func (r *VenueRepo) List(ctx context.Context, ids []id.ID, flt domain.ListFilter) (domain.ListResult[*venue.Venue], error) {
	if len(ids) > 0 {
		flt.IDs = ids
	}
	flt.VenueID = "" // venues table has no venue_id column
	return r.base.List(ctx, flt)
}
