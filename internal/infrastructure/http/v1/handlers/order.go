package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/order"
	"barstock/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles supplier order endpoints.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /orders with document filters.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := order.ListFilter{
		ListFilter: domain.ListFilter{
			VenueID: h.VenueID(c),
			Search:  c.Query("search"),
			Limit:   h.ParseIntQuery(c, "limit", 50),
			Offset:  h.ParseIntQuery(c, "offset", 0),
			OrderBy: c.DefaultQuery("order_by", "-date"),
		},
	}

	if raw := c.Query("supplier_id"); raw != "" {
		supplierID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplier id"))
			return
		}
		filter.SupplierID = &supplierID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date_from (RFC3339 expected)"))
			return
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date_to (RFC3339 expected)"))
			return
		}
		filter.DateTo = &to
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, o := range result.Items {
		items[i] = dto.FromOrder(o)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, h.VenueID(c), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(doc))
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToOrder(h.VenueID(c), h.Author(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(doc))
}

// Update handles PUT /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, h.VenueID(c), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := req.Apply(existing)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(updated))
}

// ChangeStatus handles POST /orders/:id/status
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangeOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.ChangeStatus(ctx, h.VenueID(c), docID, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(doc))
}

// Delete handles DELETE /orders/:id - soft delete.
func (h *OrderHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, h.VenueID(c), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
