package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barstock/internal/core/apperror"
	appctx "barstock/internal/core/context"
	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/auth"
	"barstock/internal/domain/catalogs/venue"
	"barstock/internal/infrastructure/http/v1/dto"
)

// VenueHandler handles venue CRUD and membership management.
type VenueHandler struct {
	*BaseHandler
	service     *venue.Service
	authService *auth.Service
}

// NewVenueHandler creates a new venue handler.
func NewVenueHandler(base *BaseHandler, service *venue.Service, authService *auth.Service) *VenueHandler {
	return &VenueHandler{
		BaseHandler: base,
		service:     service,
		authService: authService,
	}
}

// List handles GET /venues - venues the current user is a member of.
// Admins see every venue.
func (h *VenueHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user := appctx.GetUser(ctx)
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("not authenticated"))
		return
	}

	var memberIDs []id.ID
	if !user.IsAdmin {
		memberIDs = make([]id.ID, 0, len(user.VenueIDs))
		for _, raw := range user.VenueIDs {
			venueID, err := id.Parse(raw)
			if err != nil {
				continue
			}
			memberIDs = append(memberIDs, venueID)
		}
		if len(memberIDs) == 0 {
			c.JSON(http.StatusOK, dto.ListResponse{Items: []any{}})
			return
		}
	}

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)

	result, err := h.service.List(ctx, memberIDs, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, v := range result.Items {
		items[i] = dto.FromVenue(v)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Create handles POST /venues. The creator becomes the venue owner;
// the new membership lands in the access token on the next refresh.
func (h *VenueHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	user := appctx.GetUser(ctx)
	if user == nil {
		h.Error(c, apperror.NewUnauthorized("not authenticated"))
		return
	}
	userID, err := id.Parse(user.UserID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	var req dto.CreateVenueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	v := req.ToVenue()
	if err := h.service.Create(ctx, v); err != nil {
		h.Error(c, err)
		return
	}

	err = h.authService.AssignVenue(ctx, auth.AssignRequest{
		UserID:  userID,
		VenueID: v.ID.String(),
		Role:    auth.RoleOwner,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromVenue(v))
}

// Get handles GET /venues/:venue_id
func (h *VenueHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	venueID, err := id.Parse(h.VenueID(c))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid venue id"))
		return
	}

	v, err := h.service.GetByID(ctx, venueID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVenue(v))
}

// Update handles PUT /venues/:venue_id
func (h *VenueHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	venueID, err := id.Parse(h.VenueID(c))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid venue id"))
		return
	}

	var req dto.UpdateVenueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, venueID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := req.Apply(existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVenue(updated))
}

// Delete handles DELETE /venues/:venue_id - soft delete.
func (h *VenueHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	venueID, err := id.Parse(h.VenueID(c))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid venue id"))
		return
	}

	if err := h.service.Delete(ctx, venueID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Membership ---

// ListMembers handles GET /venues/:venue_id/members
func (h *VenueHandler) ListMembers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.authService.ListVenueMembers(ctx, h.VenueID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(users))
	for i := range users {
		items[i] = dto.FromUser(&users[i])
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, TotalCount: int64(len(items))})
}

// AssignMember handles POST /venues/:venue_id/members
func (h *VenueHandler) AssignMember(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AssignMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(req.UserID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	err = h.authService.AssignVenue(ctx, auth.AssignRequest{
		UserID:  userID,
		VenueID: h.VenueID(c),
		Role:    req.Role,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "member assigned")
}

// RevokeMember handles DELETE /venues/:venue_id/members/:user_id
func (h *VenueHandler) RevokeMember(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := id.Parse(c.Param("user_id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	if err := h.authService.RevokeVenue(ctx, userID, h.VenueID(c)); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
