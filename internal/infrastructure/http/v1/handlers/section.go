package handlers

import (
	"barstock/internal/domain/catalogs/section"
	"barstock/internal/infrastructure/http/v1/dto"
)

// SectionHTTPHandler is a type alias to shorten signatures.
type SectionHTTPHandler = CatalogHandler[
	*section.Section,
	dto.CreateSectionRequest,
	dto.UpdateSectionRequest,
]

// NewSectionHandler creates a configured generic handler for sections.
func NewSectionHandler(base *BaseHandler, service *section.Service) *SectionHTTPHandler {
	config := CatalogHandlerConfig[
		*section.Section,
		dto.CreateSectionRequest,
		dto.UpdateSectionRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "section",

		MapCreateDTO: func(venueID string, req dto.CreateSectionRequest) *section.Section {
			return req.ToSection(venueID)
		},
		MapUpdateDTO: func(req dto.UpdateSectionRequest, existing *section.Section) *section.Section {
			return req.Apply(existing)
		},
		MapToDTO: func(s *section.Section) any {
			return dto.FromSection(s)
		},
	}

	return NewCatalogHandler(base, config)
}
