package dto

import (
	"barstock/internal/domain/catalogs/section"
)

// SectionResponse represents a section in API responses.
type SectionResponse struct {
	BaseResponse
	VenueID  string `json:"venue_id"`
	AreaID   string `json:"area_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// FromSection creates SectionResponse from domain section.
func FromSection(s *section.Section) *SectionResponse {
	return &SectionResponse{
		BaseResponse: FromBaseEntity(s.BaseEntity),
		VenueID:      s.VenueID,
		AreaID:       s.AreaID,
		Name:         s.Name,
		Position:     s.Position,
	}
}

// CreateSectionRequest for creating a section.
type CreateSectionRequest struct {
	AreaID   string `json:"area_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

// ToSection builds a new domain section within the venue.
func (r *CreateSectionRequest) ToSection(venueID string) *section.Section {
	s := section.NewSection(venueID, r.AreaID, r.Name)
	s.Position = r.Position
	return s
}

// UpdateSectionRequest for updating a section.
type UpdateSectionRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing section.
func (r *UpdateSectionRequest) Apply(s *section.Section) *section.Section {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Position != nil {
		s.Position = *r.Position
	}
	s.Version = r.Version
	return s
}
