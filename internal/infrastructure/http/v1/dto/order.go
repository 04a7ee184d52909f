package dto

import (
	"time"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
	"barstock/internal/domain/order"
)

// OrderLineResponse represents one ordered item.
// The wire name "ammount" is a long-standing client contract; keep it.
type OrderLineResponse struct {
	LineID    string      `json:"line_id"`
	LineNo    int         `json:"line_no"`
	ItemID    string      `json:"item_id"`
	Ammount   float64     `json:"ammount"`
	CostPrice money.Money `json:"cost_price"`
	Cost      money.Money `json:"cost"`
}

// OrderResponse represents a supplier order in API responses.
type OrderResponse struct {
	BaseResponse
	VenueID         string              `json:"venue_id"`
	Number          string              `json:"number"`
	Date            time.Time           `json:"date"`
	Status          string              `json:"status"`
	CreatedBy       UserStubResponse    `json:"created_by"`
	Notes           string              `json:"notes,omitempty"`
	SupplierID      string              `json:"supplier_id"`
	ReqDeliveryDate time.Time           `json:"req_delivery_date"`
	Total           money.Money         `json:"total"`
	TotalWithVAT    money.Money         `json:"total_with_vat"`
	Items           []OrderLineResponse `json:"items"`
}

// FromOrder creates OrderResponse from domain order.
func FromOrder(o *order.Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			LineID:    l.LineID.String(),
			LineNo:    l.LineNo,
			ItemID:    l.ItemID.String(),
			Ammount:   l.Ammount,
			CostPrice: l.CostPrice,
			Cost:      l.Cost,
		}
	}

	return &OrderResponse{
		BaseResponse:    FromBaseEntity(o.BaseEntity),
		VenueID:         o.VenueID,
		Number:          o.Number,
		Date:            o.Date,
		Status:          o.Status,
		CreatedBy:       FromUserStub(o.CreatedBy),
		Notes:           o.Notes,
		SupplierID:      o.SupplierID.String(),
		ReqDeliveryDate: o.ReqDeliveryDate,
		Total:           o.Total,
		TotalWithVAT:    o.TotalWithVAT,
		Items:           lines,
	}
}

// OrderLineRequest is one line of a create/update request.
type OrderLineRequest struct {
	ItemID    string      `json:"item_id" binding:"required,uuid"`
	Ammount   float64     `json:"ammount" binding:"required,gt=0"`
	CostPrice money.Money `json:"cost_price"`
}

// CreateOrderRequest for creating an order.
type CreateOrderRequest struct {
	SupplierID      string             `json:"supplier_id" binding:"required,uuid"`
	ReqDeliveryDate time.Time          `json:"req_delivery_date" binding:"required"`
	Date            *time.Time         `json:"date"`
	Notes           string             `json:"notes"`
	Items           []OrderLineRequest `json:"items" binding:"dive"`
}

// ToOrder builds a new domain order within the venue.
func (r *CreateOrderRequest) ToOrder(venueID string, author entity.UserStub) (*order.Order, error) {
	supplierID, err := id.Parse(r.SupplierID)
	if err != nil {
		return nil, apperror.NewValidation("invalid supplier id").
			WithDetail("field", "supplier_id")
	}

	o := order.NewOrder(venueID, supplierID, author)
	o.ReqDeliveryDate = r.ReqDeliveryDate
	o.Notes = r.Notes
	if r.Date != nil {
		o.Date = *r.Date
	}

	for _, line := range r.Items {
		itemID, err := id.Parse(line.ItemID)
		if err != nil {
			return nil, apperror.NewValidation("invalid item id").
				WithDetail("field", "item_id").
				WithDetail("value", line.ItemID)
		}
		o.AddLine(itemID, line.Ammount, line.CostPrice)
	}

	return o, nil
}

// UpdateOrderRequest for updating a draft order.
type UpdateOrderRequest struct {
	SupplierID      *string            `json:"supplier_id" binding:"omitempty,uuid"`
	ReqDeliveryDate *time.Time         `json:"req_delivery_date"`
	Date            *time.Time         `json:"date"`
	Notes           *string            `json:"notes"`
	Items           []OrderLineRequest `json:"items" binding:"dive"`
	Version         int                `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing order. Submitted lines replace
// the table part entirely.
func (r *UpdateOrderRequest) Apply(o *order.Order) (*order.Order, error) {
	if r.SupplierID != nil {
		supplierID, err := id.Parse(*r.SupplierID)
		if err != nil {
			return nil, apperror.NewValidation("invalid supplier id").
				WithDetail("field", "supplier_id")
		}
		o.SupplierID = supplierID
	}
	if r.ReqDeliveryDate != nil {
		o.ReqDeliveryDate = *r.ReqDeliveryDate
	}
	if r.Date != nil {
		o.Date = *r.Date
	}
	if r.Notes != nil {
		o.Notes = *r.Notes
	}

	if r.Items != nil {
		o.Lines = o.Lines[:0]
		for _, line := range r.Items {
			itemID, err := id.Parse(line.ItemID)
			if err != nil {
				return nil, apperror.NewValidation("invalid item id").
					WithDetail("field", "item_id").
					WithDetail("value", line.ItemID)
			}
			o.AddLine(itemID, line.Ammount, line.CostPrice)
		}
	}

	o.Version = r.Version
	return o, nil
}

// ChangeOrderStatusRequest moves an order through its lifecycle.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
