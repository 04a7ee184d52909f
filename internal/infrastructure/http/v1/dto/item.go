package dto

import (
	"barstock/internal/domain/catalogs/item"
)

// ItemResponse represents an inventory item in API responses.
type ItemResponse struct {
	BaseResponse
	VenueID   string `json:"venue_id"`
	ProductID string `json:"product_id"`
}

// FromItem creates ItemResponse from domain item.
func FromItem(i *item.Item) *ItemResponse {
	return &ItemResponse{
		BaseResponse: FromBaseEntity(i.BaseEntity),
		VenueID:      i.VenueID,
		ProductID:    i.ProductID,
	}
}

// CreateItemRequest enrolls a product into the venue's stock list.
type CreateItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// ToItem builds a new domain item within the venue.
func (r *CreateItemRequest) ToItem(venueID string) *item.Item {
	return item.NewItem(venueID, r.ProductID)
}

// UpdateItemRequest for updating an inventory item.
type UpdateItemRequest struct {
	ProductID *string `json:"product_id" binding:"omitempty,uuid"`
	Version   int     `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing item.
func (r *UpdateItemRequest) Apply(i *item.Item) *item.Item {
	if r.ProductID != nil {
		i.ProductID = *r.ProductID
	}
	i.Version = r.Version
	return i
}
