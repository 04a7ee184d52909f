package report

import (
	"context"

	"barstock/internal/core/id"
	"barstock/internal/domain"
)

// Repository defines persistence for report snapshots.
type Repository interface {
	// Create inserts a snapshot with its compressed data payload.
	Create(ctx context.Context, snap *Snapshot) error

	// GetByID retrieves the full snapshot, data included.
	GetByID(ctx context.Context, venueID string, snapID id.ID) (*Snapshot, error)

	// List retrieves snapshot metadata (created_at, created_by, stats) in
	// reverse chronological order. Data payloads are never loaded here.
	List(ctx context.Context, venueID string, filter domain.ListFilter) (domain.ListResult[*Snapshot], error)

	// Delete removes a snapshot.
	Delete(ctx context.Context, venueID string, snapID id.ID) error
}
