package venue

import (
	"context"
	"fmt"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain"
)

// Service provides business logic for the Venue catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Venue service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create creates a new venue.
func (s *Service) Create(ctx context.Context, v *Venue) error {
	if err := v.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, v); err != nil {
			return fmt.Errorf("create venue: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a venue by ID.
func (s *Service) GetByID(ctx context.Context, venueID id.ID) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("venue", venueID.String())
		}
		return nil, err
	}
	return v, nil
}

// Update updates a venue with optimistic locking.
func (s *Service) Update(ctx context.Context, v *Venue) error {
	if err := v.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, v); err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes a venue.
func (s *Service) Delete(ctx context.Context, venueID id.ID) error {
	if _, err := s.GetByID(ctx, venueID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, venueID, true)
	})
}

// List returns venues visible to the given memberships.
func (s *Service) List(ctx context.Context, memberIDs []id.ID, filter domain.ListFilter) (domain.ListResult[*Venue], error) {
	return s.repo.List(ctx, memberIDs, filter)
}
