package section

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/area"
)

// Service provides business logic for the Section catalog.
type Service struct {
	*domain.CatalogService[*Section]
	repo  Repository
	areas area.Repository
}

// NewService creates a new Section service.
func NewService(repo Repository, areas area.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Section]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "section",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		areas:          areas,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkArea)
	base.Hooks().On(domain.BeforeUpdate, svc.checkArea)

	return svc
}

// checkArea verifies the referenced area exists in the same venue.
func (s *Service) checkArea(ctx context.Context, sec *Section) error {
	areaID, err := id.Parse(sec.AreaID)
	if err != nil {
		return apperror.NewValidation("invalid area id").
			WithDetail("field", "area_id")
	}
	ok, err := s.areas.Exists(ctx, sec.VenueID, areaID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("area", sec.AreaID)
	}
	return nil
}

// ListByArea retrieves sections of one area ordered by position.
func (s *Service) ListByArea(ctx context.Context, venueID, areaID string) ([]*Section, error) {
	return s.repo.ListByArea(ctx, venueID, areaID)
}
