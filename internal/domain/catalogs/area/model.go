// Package area provides the Area catalog. An area is a physical zone of a
// venue (main bar, cellar, store room) that holds sections of stock.
package area

import (
	"context"

	"barstock/internal/core/entity"
)

// Area represents a stock-holding zone within a venue.
type Area struct {
	entity.Catalog

	// Position is the display order within the venue
	Position int `db:"position" json:"position"`
}

// NewArea creates a new Area with generated ID.
func NewArea(venueID, name string) *Area {
	return &Area{
		Catalog: entity.NewCatalog(venueID, name),
	}
}

// Validate implements entity.Validatable interface.
func (a *Area) Validate(ctx context.Context) error {
	return a.Catalog.Validate(ctx)
}
