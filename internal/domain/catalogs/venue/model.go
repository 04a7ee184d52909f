// Package venue provides the Venue catalog, the root of tenancy.
// Every other domain row is scoped to a venue by venue_id.
package venue

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
)

// Venue represents a bar or restaurant operated by a customer.
type Venue struct {
	entity.BaseEntity

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Address is the street address (free-form)
	Address *string `db:"address" json:"address,omitempty"`

	// Phone is the contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`
}

// NewVenue creates a new Venue with generated ID.
func NewVenue(name string) *Venue {
	return &Venue{
		BaseEntity: entity.NewBaseEntity(),
		Name:       name,
	}
}

// Validate implements entity.Validatable interface.
func (v *Venue) Validate(ctx context.Context) error {
	if v.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
