package area

import (
	"barstock/internal/core/tx"
	"barstock/internal/domain"
)

// Service provides business logic for the Area catalog.
type Service struct {
	*domain.CatalogService[*Area]
	repo Repository
}

// NewService creates a new Area service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Area]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "area",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
