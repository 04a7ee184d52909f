// Package section provides the Section catalog. A section is a shelf or
// storage unit inside an area; placements reference the section they sit in.
package section

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
)

// Section represents a shelf within an area.
type Section struct {
	entity.Catalog

	// AreaID is the owning area
	AreaID string `db:"area_id" json:"area_id"`

	// Position is the display order within the area
	Position int `db:"position" json:"position"`
}

// NewSection creates a new Section with generated ID.
func NewSection(venueID, areaID, name string) *Section {
	return &Section{
		Catalog: entity.NewCatalog(venueID, name),
		AreaID:  areaID,
	}
}

// Validate implements entity.Validatable interface.
func (s *Section) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	if s.AreaID == "" {
		return apperror.NewValidation("area is required").
			WithDetail("field", "area_id")
	}
	return nil
}
