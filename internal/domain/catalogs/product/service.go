package product

import (
	"context"
	"strings"

	"barstock/internal/core/tx"
	"barstock/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.normalize)
	base.Hooks().On(domain.BeforeUpdate, svc.normalize)

	return svc
}

// normalize trims classification fields so grouping keys stay stable.
// Values are case-sensitive on purpose; only whitespace is cleaned.
func (s *Service) normalize(ctx context.Context, p *Product) error {
	p.Type = strings.TrimSpace(p.Type)
	p.Category = strings.TrimSpace(p.Category)
	p.SubCategory = strings.TrimSpace(p.SubCategory)
	p.Unit = strings.TrimSpace(p.Unit)
	return nil
}

// ListBySupplier retrieves products with the given default supplier.
func (s *Service) ListBySupplier(ctx context.Context, venueID, supplierID string) ([]*Product, error) {
	return s.repo.ListBySupplier(ctx, venueID, supplierID)
}
