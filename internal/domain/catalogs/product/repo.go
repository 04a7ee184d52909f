package product

import (
	"context"

	"barstock/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListBySupplier retrieves products with the given default supplier.
	ListBySupplier(ctx context.Context, venueID, supplierID string) ([]*Product, error)
}
