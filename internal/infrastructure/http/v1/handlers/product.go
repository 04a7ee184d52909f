package handlers

import (
	"barstock/internal/domain/catalogs/product"
	"barstock/internal/infrastructure/http/v1/dto"
)

// ProductHTTPHandler is a type alias to shorten signatures.
type ProductHTTPHandler = CatalogHandler[
	*product.Product,
	dto.CreateProductRequest,
	dto.UpdateProductRequest,
]

// NewProductHandler creates a configured generic handler for products.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHTTPHandler {
	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(venueID string, req dto.CreateProductRequest) *product.Product {
			return req.ToProduct(venueID)
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			return req.Apply(existing)
		},
		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	}

	return NewCatalogHandler(base, config)
}
