package dto

import (
	"barstock/internal/domain/catalogs/venue"
)

// VenueResponse represents a venue in API responses.
type VenueResponse struct {
	BaseResponse
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// FromVenue creates VenueResponse from domain venue.
func FromVenue(v *venue.Venue) *VenueResponse {
	return &VenueResponse{
		BaseResponse: FromBaseEntity(v.BaseEntity),
		Name:         v.Name,
		Address:      v.Address,
		Phone:        v.Phone,
	}
}

// CreateVenueRequest for creating a venue.
type CreateVenueRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// ToVenue builds a new domain venue.
func (r *CreateVenueRequest) ToVenue() *venue.Venue {
	v := venue.NewVenue(r.Name)
	v.Address = r.Address
	v.Phone = r.Phone
	return v
}

// UpdateVenueRequest for updating a venue.
type UpdateVenueRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Version int     `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing venue.
func (r *UpdateVenueRequest) Apply(v *venue.Venue) *venue.Venue {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Address != nil {
		v.Address = r.Address
	}
	if r.Phone != nil {
		v.Phone = r.Phone
	}
	v.Version = r.Version
	return v
}
