package placement

import (
	"context"
	"time"
)

// Update is one row of a bulk placement write. Only the whitelisted fields
// are applied; UpdatedAt is the client's last-known timestamp used for
// conflict detection.
type Update struct {
	ID        string    `json:"id"`
	Volume    float64   `json:"volume"`
	Position  int       `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the interface for Placement persistence.
type Repository interface {
	Create(ctx context.Context, p *Placement) error
	GetByID(ctx context.Context, venueID, placementID string) (*Placement, error)
	Delete(ctx context.Context, venueID, placementID string) error

	// ListByVenue retrieves all placements of a venue, optionally narrowed
	// to an area and/or section. Ordered by area, section, position.
	ListByVenue(ctx context.Context, venueID, areaID, sectionID string) ([]*Placement, error)

	// BulkApply applies updates to rows whose stored updated_at is not newer
	// than the submitted one. Returns IDs of rows skipped as conflicts.
	BulkApply(ctx context.Context, venueID string, updates []Update) (conflicts []string, err error)

	// ResetVolumes zeroes the volume of every placement in the venue.
	// Runs inside the stock-take transaction.
	ResetVolumes(ctx context.Context, venueID string) error
}
