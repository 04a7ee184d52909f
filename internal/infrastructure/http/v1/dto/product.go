package dto

import (
	"barstock/internal/core/money"
	"barstock/internal/domain/catalogs/product"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	BaseResponse
	VenueID     string  `json:"venue_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	SupplierID  *string `json:"supplier_id,omitempty"`

	CostPrice money.Money `json:"cost_price"`
	SalePrice money.Money `json:"sale_price"`

	UnitSize    float64 `json:"unit_size"`
	Unit        string  `json:"unit"`
	CountAsFull float64 `json:"count_as_full"`
	ParLevel    float64 `json:"par_level"`
	OrderUnit   string  `json:"order_unit"`
}

// FromProduct creates ProductResponse from domain product.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		BaseResponse: FromBaseEntity(p.BaseEntity),
		VenueID:      p.VenueID,
		Name:         p.Name,
		Type:         p.Type,
		Category:     p.Category,
		SubCategory:  p.SubCategory,
		SupplierID:   p.SupplierID,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		UnitSize:     p.UnitSize,
		Unit:         p.Unit,
		CountAsFull:  p.CountAsFull,
		ParLevel:     p.ParLevel,
		OrderUnit:    p.OrderUnit,
	}
}

// CreateProductRequest for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	SupplierID  *string `json:"supplier_id" binding:"omitempty,uuid"`

	CostPrice money.Money `json:"cost_price"`
	SalePrice money.Money `json:"sale_price"`

	UnitSize    float64 `json:"unit_size"`
	Unit        string  `json:"unit"`
	CountAsFull float64 `json:"count_as_full"`
	ParLevel    float64 `json:"par_level"`
	OrderUnit   string  `json:"order_unit"`
}

// ToProduct builds a new domain product within the venue.
func (r *CreateProductRequest) ToProduct(venueID string) *product.Product {
	p := product.NewProduct(venueID, r.Name)
	p.Type = r.Type
	p.Category = r.Category
	p.SubCategory = r.SubCategory
	p.SupplierID = r.SupplierID
	p.CostPrice = r.CostPrice
	p.SalePrice = r.SalePrice
	p.UnitSize = r.UnitSize
	p.Unit = r.Unit
	p.CountAsFull = r.CountAsFull
	p.ParLevel = r.ParLevel
	p.OrderUnit = r.OrderUnit
	return p
}

// UpdateProductRequest for updating a product.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	SubCategory *string `json:"sub_category"`
	SupplierID  *string `json:"supplier_id" binding:"omitempty,uuid"`

	CostPrice *money.Money `json:"cost_price"`
	SalePrice *money.Money `json:"sale_price"`

	UnitSize    *float64 `json:"unit_size"`
	Unit        *string  `json:"unit"`
	CountAsFull *float64 `json:"count_as_full"`
	ParLevel    *float64 `json:"par_level"`
	OrderUnit   *string  `json:"order_unit"`

	Version int `json:"version" binding:"required,min=1"`
}

// Apply merges the update onto an existing product.
func (r *UpdateProductRequest) Apply(p *product.Product) *product.Product {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.SubCategory != nil {
		p.SubCategory = *r.SubCategory
	}
	if r.SupplierID != nil {
		p.SupplierID = r.SupplierID
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.SalePrice != nil {
		p.SalePrice = *r.SalePrice
	}
	if r.UnitSize != nil {
		p.UnitSize = *r.UnitSize
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.CountAsFull != nil {
		p.CountAsFull = *r.CountAsFull
	}
	if r.ParLevel != nil {
		p.ParLevel = *r.ParLevel
	}
	if r.OrderUnit != nil {
		p.OrderUnit = *r.OrderUnit
	}
	p.Version = r.Version
	return p
}
