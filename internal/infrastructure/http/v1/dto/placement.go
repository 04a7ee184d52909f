package dto

import (
	"time"

	"barstock/internal/domain/placement"
)

// PlacementResponse represents a placement in API responses.
type PlacementResponse struct {
	BaseResponse
	VenueID   string  `json:"venue_id"`
	ItemID    string  `json:"item_id"`
	AreaID    string  `json:"area_id"`
	SectionID string  `json:"section_id"`
	Volume    float64 `json:"volume"`
	Position  int     `json:"position"`
}

// FromPlacement creates PlacementResponse from domain placement.
func FromPlacement(p *placement.Placement) *PlacementResponse {
	return &PlacementResponse{
		BaseResponse: FromBaseEntity(p.BaseEntity),
		VenueID:      p.VenueID,
		ItemID:       p.ItemID,
		AreaID:       p.AreaID,
		SectionID:    p.SectionID,
		Volume:       p.Volume,
		Position:     p.Position,
	}
}

// CreatePlacementRequest for creating a placement.
type CreatePlacementRequest struct {
	ItemID    string  `json:"item_id" binding:"required,uuid"`
	AreaID    string  `json:"area_id" binding:"required,uuid"`
	SectionID string  `json:"section_id" binding:"required,uuid"`
	Volume    float64 `json:"volume" binding:"min=0"`
	Position  int     `json:"position"`
}

// ToPlacement builds a new domain placement within the venue.
func (r *CreatePlacementRequest) ToPlacement(venueID string) *placement.Placement {
	p := placement.NewPlacement(venueID, r.ItemID, r.AreaID, r.SectionID)
	p.Volume = r.Volume
	p.Position = r.Position
	return p
}

// PlacementUpdate is one row of a bulk placement write.
type PlacementUpdate struct {
	ID        string    `json:"id" binding:"required,uuid"`
	Volume    float64   `json:"volume" binding:"min=0"`
	Position  int       `json:"position"`
	UpdatedAt time.Time `json:"updated_at" binding:"required"`
}

// BulkUpdateRequest applies counted volumes from a stock-taking client.
type BulkUpdateRequest struct {
	Updates []PlacementUpdate `json:"updates" binding:"required,dive"`
}

// ToUpdates converts to domain updates.
func (r *BulkUpdateRequest) ToUpdates() []placement.Update {
	updates := make([]placement.Update, len(r.Updates))
	for i, u := range r.Updates {
		updates[i] = placement.Update{
			ID:        u.ID,
			Volume:    u.Volume,
			Position:  u.Position,
			UpdatedAt: u.UpdatedAt,
		}
	}
	return updates
}

// BulkUpdateResponse reports rows skipped due to concurrent edits.
// The client re-fetches the conflicting placements and retries.
type BulkUpdateResponse struct {
	Applied   int      `json:"applied"`
	Conflicts []string `json:"conflicts"`
}
