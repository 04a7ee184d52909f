package item

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/product"
)

// Service provides business logic for the InventoryItem catalog.
type Service struct {
	*domain.CatalogService[*Item]
	repo     Repository
	products product.Repository
}

// NewService creates a new InventoryItem service.
func NewService(repo Repository, products product.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "inventory item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		products:       products,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

// prepareForCreate verifies the product exists in the venue and is not
// already stocked.
func (s *Service) prepareForCreate(ctx context.Context, it *Item) error {
	productID, err := id.Parse(it.ProductID)
	if err != nil {
		return apperror.NewValidation("invalid product id").
			WithDetail("field", "product_id")
	}
	ok, err := s.products.Exists(ctx, it.VenueID, productID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("product", it.ProductID)
	}

	existing, err := s.repo.FindByProduct(ctx, it.VenueID, it.ProductID)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if existing != nil && existing.ID != it.ID {
		return apperror.NewDuplicate("inventory item", "product", it.ProductID)
	}
	return nil
}

// ListActive retrieves all non-deleted items of a venue.
func (s *Service) ListActive(ctx context.Context, venueID string) ([]*Item, error) {
	return s.repo.ListActive(ctx, venueID)
}
