package dto

import (
	"barstock/internal/domain/catalogs/supplier"
)

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	BaseResponse
	VenueID     string  `json:"venue_id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// FromSupplier creates SupplierResponse from domain supplier.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		BaseResponse: FromBaseEntity(s.BaseEntity),
		VenueID:      s.VenueID,
		Name:         s.Name,
		ContactName:  s.ContactName,
		Email:        s.Email,
		Phone:        s.Phone,
		Address:      s.Address,
	}
}

// CreateSupplierRequest for creating a supplier.
type CreateSupplierRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// ToSupplier builds a new domain supplier within the venue.
func (r *CreateSupplierRequest) ToSupplier(venueID string) *supplier.Supplier {
	s := supplier.NewSupplier(venueID, r.Name)
	s.ContactName = r.ContactName
	s.Email = r.Email
	s.Phone = r.Phone
	s.Address = r.Address
	return s
}

// UpdateSupplierRequest for updating a supplier.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing supplier.
func (r *UpdateSupplierRequest) Apply(s *supplier.Supplier) *supplier.Supplier {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.ContactName != nil {
		s.ContactName = r.ContactName
	}
	if r.Email != nil {
		s.Email = r.Email
	}
	if r.Phone != nil {
		s.Phone = r.Phone
	}
	if r.Address != nil {
		s.Address = r.Address
	}
	s.Version = r.Version
	return s
}
