// Package order provides the Order document service.
package order

import (
	"context"
	"fmt"
	"time"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain"
	"barstock/pkg/logger"
	"barstock/pkg/numerator"
)

// Service provides business operations for supplier orders.
type Service struct {
	repo      Repository
	numerator *numerator.Service
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Order]
}

// NewService creates a new order service.
func NewService(repo Repository, num *numerator.Service, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: num,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Order](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Order] {
	return s.hooks
}

// Create creates a new order document.
func (s *Service) Create(ctx context.Context, doc *Order) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	doc.RecalculateTotals()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix, doc.VenueID)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.hooks.Run(ctx, domain.AfterCreate, doc)

	logger.Info(ctx, "order created",
		"id", doc.ID,
		"number", doc.Number,
		"supplier_id", doc.SupplierID)

	return nil
}

// GetByID retrieves an order with lines.
func (s *Service) GetByID(ctx context.Context, venueID string, docID id.ID) (*Order, error) {
	doc, err := s.repo.GetByID(ctx, venueID, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates an order document. Delivered and paid orders are frozen.
func (s *Service) Update(ctx context.Context, doc *Order) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, doc.VenueID, doc.ID)
	if err != nil {
		return err
	}
	if !current.IsEditable() {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"delivered orders cannot be modified",
		).WithDetail("order_id", doc.ID.String())
	}
	// Status changes go through ChangeStatus, not Update
	doc.Status = current.Status

	doc.RecalculateTotals()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
}

// ChangeStatus moves the order along its lifecycle.
// Delivered and paid transitions stamp the requested delivery date if the
// client did not set one.
func (s *Service) ChangeStatus(ctx context.Context, venueID string, docID id.ID, status string) (*Order, error) {
	doc, err := s.GetByID(ctx, venueID, docID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(doc.Status, status) {
		return nil, apperror.NewInvalidStatusChange(doc.Status, status)
	}

	doc.Status = status
	if doc.IsPurchase() && doc.ReqDeliveryDate.IsZero() {
		doc.ReqDeliveryDate = time.Now().UTC()
	}
	doc.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order status changed",
		"id", doc.ID,
		"number", doc.Number,
		"status", status)

	return doc, nil
}

// Delete soft-deletes an order. Purchase records cannot be deleted, they
// would silently change historical usage reports.
func (s *Service) Delete(ctx context.Context, venueID string, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, venueID, docID)
	if err != nil {
		return err
	}

	if doc.IsPurchase() {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"delivered orders cannot be deleted",
		).WithDetail("order_id", docID.String())
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, venueID, docID)
	})
}

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	return s.repo.List(ctx, filter)
}

// ListDeliveredBetween retrieves purchase orders inside [from, to).
func (s *Service) ListDeliveredBetween(ctx context.Context, venueID string, from, to time.Time) ([]*Order, error) {
	return s.repo.ListDeliveredBetween(ctx, venueID, from, to)
}
