package area

import (
	"barstock/internal/domain"
)

// Repository defines the interface for Area persistence.
type Repository interface {
	domain.CatalogRepository[*Area]
}
