// Package product provides the Product catalog. A product is the priced,
// classified definition of something a venue stocks; inventory items bind
// products to a venue's stock list.
package product

import (
	"context"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/money"
)

// Product represents a purchasable, sellable stock definition.
type Product struct {
	entity.Catalog

	// Type is the top classification level (e.g. "beverage", "food")
	Type string `db:"type" json:"type"`

	// Category is the middle classification level (e.g. "spirits")
	Category string `db:"category" json:"category"`

	// SubCategory is the leaf classification level (e.g. "whisky")
	SubCategory string `db:"sub_category" json:"sub_category"`

	// SupplierID is the default supplier for reordering (nullable)
	SupplierID *string `db:"supplier_id" json:"supplier_id,omitempty"`

	// CostPrice is the purchase cost per full unit
	CostPrice money.Money `db:"cost_price" json:"cost_price"`

	// SalePrice is the retail price per serving/unit sold
	SalePrice money.Money `db:"sale_price" json:"sale_price"`

	// UnitSize is the capacity of one full unit in Unit (e.g. 700 for a 700ml bottle)
	UnitSize float64 `db:"unit_size" json:"unit_size"`

	// Unit is the measurement unit of UnitSize ("ml", "g", "each")
	Unit string `db:"unit" json:"unit"`

	// CountAsFull is the fractional fill above which a partial unit counts
	// as a whole one when suggesting reorders; in [0,1]
	CountAsFull float64 `db:"count_as_full" json:"count_as_full"`

	// ParLevel is the target number of full units on hand; 0 means unset
	ParLevel float64 `db:"par_level" json:"par_level"`

	// OrderUnit describes how the product is ordered ("case", "bottle", "keg")
	OrderUnit string `db:"order_unit" json:"order_unit"`
}

// NewProduct creates a new Product with generated ID.
func NewProduct(venueID, name string) *Product {
	return &Product{
		Catalog:   entity.NewCatalog(venueID, name),
		CostPrice: money.Zero(),
		SalePrice: money.Zero(),
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.CostPrice.IsNegative() {
		return apperror.NewValidation("cost price cannot be negative").
			WithDetail("field", "cost_price")
	}
	if p.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price cannot be negative").
			WithDetail("field", "sale_price")
	}
	if p.UnitSize < 0 {
		return apperror.NewValidation("unit size cannot be negative").
			WithDetail("field", "unit_size")
	}
	if p.CountAsFull < 0 || p.CountAsFull > 1 {
		return apperror.NewValidation("count_as_full must be between 0 and 1").
			WithDetail("field", "count_as_full").
			WithDetail("value", p.CountAsFull)
	}
	if p.ParLevel < 0 {
		return apperror.NewValidation("par level cannot be negative").
			WithDetail("field", "par_level")
	}

	return nil
}

// HasParLevel reports whether a reorder target is configured.
func (p *Product) HasParLevel() bool {
	return p.ParLevel > 0
}
