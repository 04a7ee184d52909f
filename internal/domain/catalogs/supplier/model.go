// Package supplier provides the Supplier catalog. Orders reference a
// supplier; products carry a default supplier for reordering.
package supplier

import (
	"context"

	"barstock/internal/core/entity"
)

// Supplier represents a vendor the venue orders stock from.
type Supplier struct {
	entity.Catalog

	// ContactName is the sales rep or account manager
	ContactName *string `db:"contact_name" json:"contact_name,omitempty"`

	// Email is the ordering email address
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the ordering phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the vendor's address (free-form)
	Address *string `db:"address" json:"address,omitempty"`
}

// NewSupplier creates a new Supplier with generated ID.
func NewSupplier(venueID, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(venueID, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
