// Package order provides the Order document repository.
package order

import (
	"context"
	"time"

	"barstock/internal/core/id"
	"barstock/internal/domain"
)

// Repository defines operations for order documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, venueID string, docID id.ID) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	Delete(ctx context.Context, venueID string, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error)

	// ListDeliveredBetween retrieves delivered/paid orders with
	// req_delivery_date in [from, to), lines included. Feeds the usage engine.
	ListDeliveredBetween(ctx context.Context, venueID string, from, to time.Time) ([]*Order, error)
}

// ListFilter for filtering orders.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	SupplierID *id.ID
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
}
