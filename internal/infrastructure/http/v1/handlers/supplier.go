package handlers

import (
	"barstock/internal/domain/catalogs/supplier"
	"barstock/internal/infrastructure/http/v1/dto"
)

// SupplierHTTPHandler is a type alias to shorten signatures.
type SupplierHTTPHandler = CatalogHandler[
	*supplier.Supplier,
	dto.CreateSupplierRequest,
	dto.UpdateSupplierRequest,
]

// NewSupplierHandler creates a configured generic handler for suppliers.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHTTPHandler {
	config := CatalogHandlerConfig[
		*supplier.Supplier,
		dto.CreateSupplierRequest,
		dto.UpdateSupplierRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier",

		MapCreateDTO: func(venueID string, req dto.CreateSupplierRequest) *supplier.Supplier {
			return req.ToSupplier(venueID)
		},
		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			return req.Apply(existing)
		},
		MapToDTO: func(s *supplier.Supplier) any {
			return dto.FromSupplier(s)
		},
	}

	return NewCatalogHandler(base, config)
}
