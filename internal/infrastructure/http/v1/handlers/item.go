package handlers

import (
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/infrastructure/http/v1/dto"
)

// ItemHTTPHandler is a type alias to shorten signatures.
type ItemHTTPHandler = CatalogHandler[
	*item.Item,
	dto.CreateItemRequest,
	dto.UpdateItemRequest,
]

// NewItemHandler creates a configured generic handler for inventory items.
func NewItemHandler(base *BaseHandler, service *item.Service) *ItemHTTPHandler {
	config := CatalogHandlerConfig[
		*item.Item,
		dto.CreateItemRequest,
		dto.UpdateItemRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "inventory item",

		MapCreateDTO: func(venueID string, req dto.CreateItemRequest) *item.Item {
			return req.ToItem(venueID)
		},
		MapUpdateDTO: func(req dto.UpdateItemRequest, existing *item.Item) *item.Item {
			return req.Apply(existing)
		},
		MapToDTO: func(i *item.Item) any {
			return dto.FromItem(i)
		},
	}

	return NewCatalogHandler(base, config)
}
