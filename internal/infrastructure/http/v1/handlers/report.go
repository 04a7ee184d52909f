package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/report"
	"barstock/internal/infrastructure/http/v1/dto"
)

// ReportHandler handles stock report endpoints.
type ReportHandler struct {
	*BaseHandler
	service *report.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, service *report.Service) *ReportHandler {
	return &ReportHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Generate handles POST /reports - take a stock report of the venue's
// current placements and persist it as a snapshot.
func (h *ReportHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.service.Generate(ctx, h.VenueID(c), h.Author(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, snap)
}

// Live handles GET /reports/live - current stock as it stands, computed
// on the fly. Nothing is persisted and placement volumes are untouched.
func (h *ReportHandler) Live(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.service.Preview(ctx, h.VenueID(c), h.Author(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// List handles GET /reports - snapshot metadata, newest first.
// Data payloads are never included in listings.
func (h *ReportHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	result, err := h.service.List(ctx, h.VenueID(c), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, snap := range result.Items {
		items[i] = snap.Meta()
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /reports/:id - full snapshot, data included.
func (h *ReportHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	snapID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	snap, err := h.service.GetByID(ctx, h.VenueID(c), snapID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// Delete handles DELETE /reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	snapID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, h.VenueID(c), snapID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Usage handles GET /reports/usage?open=&close= - the usage and variance
// report between two snapshots.
func (h *ReportHandler) Usage(c *gin.Context) {
	ctx := c.Request.Context()

	openID, err := id.Parse(c.Query("open"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid open snapshot id").
			WithDetail("param", "open"))
		return
	}
	closeID, err := id.Parse(c.Query("close"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid close snapshot id").
			WithDetail("param", "close"))
		return
	}

	usage, err := h.service.Usage(ctx, h.VenueID(c), openID, closeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
