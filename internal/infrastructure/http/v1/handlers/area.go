package handlers

import (
	"barstock/internal/domain/catalogs/area"
	"barstock/internal/infrastructure/http/v1/dto"
)

// AreaHTTPHandler is a type alias to shorten signatures.
type AreaHTTPHandler = CatalogHandler[
	*area.Area,
	dto.CreateAreaRequest,
	dto.UpdateAreaRequest,
]

// NewAreaHandler creates a configured generic handler for areas.
func NewAreaHandler(base *BaseHandler, service *area.Service) *AreaHTTPHandler {
	config := CatalogHandlerConfig[
		*area.Area,
		dto.CreateAreaRequest,
		dto.UpdateAreaRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "area",

		MapCreateDTO: func(venueID string, req dto.CreateAreaRequest) *area.Area {
			return req.ToArea(venueID)
		},
		MapUpdateDTO: func(req dto.UpdateAreaRequest, existing *area.Area) *area.Area {
			return req.Apply(existing)
		},
		MapToDTO: func(a *area.Area) any {
			return dto.FromArea(a)
		},
	}

	return NewCatalogHandler(base, config)
}
