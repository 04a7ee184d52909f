package entity

import (
	"context"
	"time"

	"barstock/internal/core/apperror"
)

// UserStub is the denormalized author reference carried by documents.
// Kept inline so listings never need a join against the users table.
type UserStub struct {
	ID    string `db:"-" json:"id"`
	Name  string `db:"-" json:"name"`
	Email string `db:"-" json:"email"`
}

// Document is the base type for dated business records.
// Examples: Order, ReportSnapshot.
type Document struct {
	BaseEntity

	// VenueID scopes the row to a venue
	VenueID string `db:"venue_id" json:"venue_id"`

	// Number is the document number (numerator-issued, unique within type+year)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Status is the lifecycle state; allowed values depend on the document type
	Status string `db:"status" json:"status"`

	// CreatedBy is the denormalized author (stored as JSONB)
	CreatedBy UserStub `db:"created_by" json:"created_by"`

	// Notes is an optional user comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(venueID string, author UserStub) Document {
	return Document{
		BaseEntity: NewBaseEntity(),
		VenueID:    venueID,
		Date:       time.Now().UTC(),
		CreatedBy:  author,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.VenueID == "" {
		return apperror.NewValidation("venue is required").
			WithDetail("field", "venue_id")
	}
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}
