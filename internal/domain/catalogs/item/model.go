// Package item provides the InventoryItem catalog. An inventory item is a
// product enrolled in a venue's stock list; placements and order lines
// reference items, not products.
package item

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
)

// Item represents a product stocked by a venue.
type Item struct {
	entity.BaseEntity

	// VenueID scopes the row to a venue
	VenueID string `db:"venue_id" json:"venue_id"`

	// ProductID is the stocked product
	ProductID string `db:"product_id" json:"product_id"`
}

// NewItem creates a new Item with generated ID.
func NewItem(venueID, productID string) *Item {
	return &Item{
		BaseEntity: entity.NewBaseEntity(),
		VenueID:    venueID,
		ProductID:  productID,
	}
}

// Validate implements entity.Validatable interface.
func (i *Item) Validate(ctx context.Context) error {
	if i.VenueID == "" {
		return apperror.NewValidation("venue is required").
			WithDetail("field", "venue_id")
	}
	if i.ProductID == "" {
		return apperror.NewValidation("product is required").
			WithDetail("field", "product_id")
	}
	return nil
}
