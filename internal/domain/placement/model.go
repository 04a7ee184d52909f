// Package placement provides placement records: where and how much of an
// inventory item sits in a venue. Placements are the raw input of stock
// report aggregation.
package placement

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
)

// Placement records the volume of one item in one section.
// Volume is in fractional full units (1.5 = one full bottle and a half).
type Placement struct {
	entity.BaseEntity

	// VenueID scopes the row to a venue
	VenueID string `db:"venue_id" json:"venue_id"`

	// ItemID is the counted inventory item
	ItemID string `db:"item_id" json:"item_id"`

	// AreaID is the zone the item sits in
	AreaID string `db:"area_id" json:"area_id"`

	// SectionID is the shelf within the area
	SectionID string `db:"section_id" json:"section_id"`

	// Volume is the counted amount in fractional full units
	Volume float64 `db:"volume" json:"volume"`

	// Position is the display order within the section
	Position int `db:"position" json:"position"`
}

// NewPlacement creates a new Placement with generated ID.
func NewPlacement(venueID, itemID, areaID, sectionID string) *Placement {
	return &Placement{
		BaseEntity: entity.NewBaseEntity(),
		VenueID:    venueID,
		ItemID:     itemID,
		AreaID:     areaID,
		SectionID:  sectionID,
	}
}

// Validate implements entity.Validatable interface.
func (p *Placement) Validate(ctx context.Context) error {
	if p.VenueID == "" {
		return apperror.NewValidation("venue is required").
			WithDetail("field", "venue_id")
	}
	if p.ItemID == "" {
		return apperror.NewValidation("item is required").
			WithDetail("field", "item_id")
	}
	if p.AreaID == "" {
		return apperror.NewValidation("area is required").
			WithDetail("field", "area_id")
	}
	if p.SectionID == "" {
		return apperror.NewValidation("section is required").
			WithDetail("field", "section_id")
	}
	if p.Volume < 0 {
		return apperror.NewValidation("volume cannot be negative").
			WithDetail("field", "volume").
			WithDetail("value", p.Volume)
	}
	return nil
}
