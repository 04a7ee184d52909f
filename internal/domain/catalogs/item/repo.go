package item

import (
	"context"

	"barstock/internal/domain"
)

// Repository defines the interface for InventoryItem persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// FindByProduct retrieves the item stocking a product, if any.
	FindByProduct(ctx context.Context, venueID, productID string) (*Item, error)

	// ListActive retrieves all non-deleted items of a venue.
	ListActive(ctx context.Context, venueID string) ([]*Item, error)
}
