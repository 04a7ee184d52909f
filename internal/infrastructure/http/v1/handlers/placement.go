package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/domain/placement"
	"barstock/internal/infrastructure/http/v1/dto"
)

// PlacementHandler handles placement endpoints.
type PlacementHandler struct {
	*BaseHandler
	service *placement.Service
}

// NewPlacementHandler creates a new placement handler.
func NewPlacementHandler(base *BaseHandler, service *placement.Service) *PlacementHandler {
	return &PlacementHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /placements?area_id=&section_id=
func (h *PlacementHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	placements, err := h.service.List(ctx, h.VenueID(c), c.Query("area_id"), c.Query("section_id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(placements))
	for i, p := range placements {
		items[i] = dto.FromPlacement(p)
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, TotalCount: int64(len(items))})
}

// Get handles GET /placements/:id
func (h *PlacementHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	placementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	p, err := h.service.GetByID(ctx, h.VenueID(c), placementID.String())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPlacement(p))
}

// Create handles POST /placements
func (h *PlacementHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePlacementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToPlacement(h.VenueID(c))
	if err := h.service.Create(ctx, p); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPlacement(p))
}

// Delete handles DELETE /placements/:id
func (h *PlacementHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	placementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, h.VenueID(c), placementID.String()); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkUpdate handles PUT /placements - apply counted volumes from a
// stock-taking client. Rows edited concurrently are returned as conflicts
// for the client to re-fetch and retry.
func (h *PlacementHandler) BulkUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BulkUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	conflicts, err := h.service.BulkUpdate(ctx, h.VenueID(c), req.ToUpdates())
	if err != nil {
		h.Error(c, err)
		return
	}
	if conflicts == nil {
		conflicts = []string{}
	}

	c.JSON(http.StatusOK, dto.BulkUpdateResponse{
		Applied:   len(req.Updates) - len(conflicts),
		Conflicts: conflicts,
	})
}
