package placement

import (
	"context"
	"fmt"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/domain/catalogs/section"
)

// Service provides business logic for placements.
type Service struct {
	repo      Repository
	items     item.Repository
	sections  section.Repository
	txManager tx.Manager
}

// NewService creates a new Placement service.
func NewService(repo Repository, items item.Repository, sections section.Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		items:     items,
		sections:  sections,
		txManager: txManager,
	}
}

// Create validates references and inserts a placement.
func (s *Service) Create(ctx context.Context, p *Placement) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	itemID, err := id.Parse(p.ItemID)
	if err != nil {
		return apperror.NewValidation("invalid item id").WithDetail("field", "item_id")
	}
	ok, err := s.items.Exists(ctx, p.VenueID, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("inventory item", p.ItemID)
	}

	sectionID, err := id.Parse(p.SectionID)
	if err != nil {
		return apperror.NewValidation("invalid section id").WithDetail("field", "section_id")
	}
	sec, err := s.sections.GetByID(ctx, p.VenueID, sectionID)
	if err != nil {
		return err
	}
	if sec.AreaID != p.AreaID {
		return apperror.NewValidation("section does not belong to area").
			WithDetail("section_id", p.SectionID).
			WithDetail("area_id", p.AreaID)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create placement: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a placement.
func (s *Service) GetByID(ctx context.Context, venueID, placementID string) (*Placement, error) {
	return s.repo.GetByID(ctx, venueID, placementID)
}

// Delete removes a placement.
func (s *Service) Delete(ctx context.Context, venueID, placementID string) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, venueID, placementID)
	})
}

// List retrieves placements of a venue, optionally narrowed by area/section.
func (s *Service) List(ctx context.Context, venueID, areaID, sectionID string) ([]*Placement, error) {
	return s.repo.ListByVenue(ctx, venueID, areaID, sectionID)
}

// BulkUpdate applies counted volumes from a stock-taking client. Rows whose
// stored updated_at is newer than the submitted timestamp are left alone and
// returned as conflicts; the caller re-fetches and retries those.
func (s *Service) BulkUpdate(ctx context.Context, venueID string, updates []Update) ([]string, error) {
	for _, u := range updates {
		if u.Volume < 0 {
			return nil, apperror.NewValidation("volume cannot be negative").
				WithDetail("placement_id", u.ID)
		}
	}

	var conflicts []string
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		conflicts, err = s.repo.BulkApply(ctx, venueID, updates)
		if err != nil {
			return fmt.Errorf("bulk apply placements: %w", err)
		}
		return nil
	})
	return conflicts, err
}
