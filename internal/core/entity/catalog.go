package entity

import (
	"context"

	"barstock/internal/core/apperror"
)

// Catalog is the base type for venue-scoped reference data.
// Examples: Area, Section, Product, Supplier, InventoryItem.
type Catalog struct {
	BaseEntity

	// VenueID scopes the row to a venue; every query filters on it
	VenueID string `db:"venue_id" json:"venue_id"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(venueID, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		VenueID:    venueID,
		Name:       name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if c.VenueID == "" {
		return apperror.NewValidation("venue is required").
			WithDetail("field", "venue_id")
	}
	return nil
}
