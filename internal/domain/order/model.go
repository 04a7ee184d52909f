// Package order provides the supplier Order document. Delivered and paid
// orders feed the usage engine as purchases.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
)

// Order status lifecycle. Purchases only count orders that reached
// StatusDelivered or StatusPaid.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusPaid      = "paid"
)

// vatRate is the flat VAT applied to order totals.
var vatRate = decimal.NewFromFloat(1.2)

// Order represents a supplier purchase order.
type Order struct {
	entity.Document

	// SupplierID is the vendor the order goes to
	SupplierID id.ID `db:"supplier_id" json:"supplier_id"`

	// ReqDeliveryDate is the requested delivery date; the usage engine
	// windows purchases on this field
	ReqDeliveryDate time.Time `db:"req_delivery_date" json:"req_delivery_date"`

	// Totals (calculated from lines)
	Total        money.Money `db:"total" json:"total"`
	TotalWithVAT money.Money `db:"total_with_vat" json:"total_with_vat"`

	// Table part: ordered items
	Lines []Line `db:"-" json:"items"`
}

// Line represents one ordered item.
// The wire name "ammount" is a long-standing client contract; keep it.
type Line struct {
	LineID id.ID `db:"line_id" json:"line_id"`
	LineNo int   `db:"line_no" json:"line_no"`

	// ItemID is the ordered inventory item
	ItemID id.ID `db:"item_id" json:"item_id"`

	// Ammount is the quantity ordered, in full units
	Ammount float64 `db:"ammount" json:"ammount"`

	// CostPrice is the unit cost captured at order time
	CostPrice money.Money `db:"cost_price" json:"cost_price"`

	// Cost is ammount x cost_price, rounded
	Cost money.Money `db:"cost" json:"cost"`
}

// NewOrder creates a new draft order.
func NewOrder(venueID string, supplierID id.ID, author entity.UserStub) *Order {
	o := &Order{
		Document:     entity.NewDocument(venueID, author),
		SupplierID:   supplierID,
		Total:        money.Zero(),
		TotalWithVAT: money.Zero(),
		Lines:        make([]Line, 0),
	}
	o.Status = StatusDraft
	return o
}

// AddLine appends an item to the order and recalculates totals.
func (o *Order) AddLine(itemID id.ID, ammount float64, costPrice money.Money) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(o.Lines) + 1,
		ItemID:    itemID,
		Ammount:   ammount,
		CostPrice: costPrice,
		Cost:      money.MulRound(costPrice, ammount),
	}
	o.Lines = append(o.Lines, line)
	o.RecalculateTotals()
}

// RecalculateTotals updates line costs and document totals.
func (o *Order) RecalculateTotals() {
	total := money.Zero()
	for i := range o.Lines {
		o.Lines[i].Cost = money.MulRound(o.Lines[i].CostPrice, o.Lines[i].Ammount)
		total = money.RoundCurrency(total.Add(o.Lines[i].Cost))
	}
	o.Total = total
	o.TotalWithVAT = money.RoundCurrency(total.Mul(vatRate))
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(o.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplier_id")
	}

	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", o.Status)
	}

	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, line := range o.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "items").
				WithDetail("line_no", i+1)
		}
		if line.Ammount <= 0 {
			return apperror.NewValidation("ammount must be positive").
				WithDetail("field", "items").
				WithDetail("line_no", i+1)
		}
		if line.CostPrice.IsNegative() {
			return apperror.NewValidation("cost price cannot be negative").
				WithDetail("field", "items").
				WithDetail("line_no", i+1)
		}
	}

	return nil
}

// IsEditable reports whether lines may still change.
// Once delivered the order is a purchase record and is frozen.
func (o *Order) IsEditable() bool {
	return o.Status == StatusDraft || o.Status == StatusSent || o.Status == StatusConfirmed
}

// IsPurchase reports whether the order counts toward usage purchases.
func (o *Order) IsPurchase() bool {
	return o.Status == StatusDelivered || o.Status == StatusPaid
}

// CanTransition reports whether the status change is allowed.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

var transitions = map[string][]string{
	StatusDraft:     {StatusSent},
	StatusSent:      {StatusConfirmed, StatusDraft},
	StatusConfirmed: {StatusDelivered},
	StatusDelivered: {StatusPaid},
	StatusPaid:      {},
}

func isValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}
