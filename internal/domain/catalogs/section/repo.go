package section

import (
	"context"

	"barstock/internal/domain"
)

// Repository defines the interface for Section persistence.
type Repository interface {
	domain.CatalogRepository[*Section]

	// ListByArea retrieves sections of one area ordered by position.
	ListByArea(ctx context.Context, venueID, areaID string) ([]*Section, error)
}
