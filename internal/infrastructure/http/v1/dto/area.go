package dto

import (
	"barstock/internal/domain/catalogs/area"
)

// AreaResponse represents an area in API responses.
type AreaResponse struct {
	BaseResponse
	VenueID  string `json:"venue_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// FromArea creates AreaResponse from domain area.
func FromArea(a *area.Area) *AreaResponse {
	return &AreaResponse{
		BaseResponse: FromBaseEntity(a.BaseEntity),
		VenueID:      a.VenueID,
		Name:         a.Name,
		Position:     a.Position,
	}
}

// CreateAreaRequest for creating an area.
type CreateAreaRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

// ToArea builds a new domain area within the venue.
func (r *CreateAreaRequest) ToArea(venueID string) *area.Area {
	a := area.NewArea(venueID, r.Name)
	a.Position = r.Position
	return a
}

// UpdateAreaRequest for updating an area.
type UpdateAreaRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing area.
func (r *UpdateAreaRequest) Apply(a *area.Area) *area.Area {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Position != nil {
		a.Position = *r.Position
	}
	a.Version = r.Version
	return a
}
