package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barstock/internal/core/apperror"
	appctx "barstock/internal/core/context"
)

// VenueParam is the route parameter carrying the venue ID.
const VenueParam = "venue_id"

// VenueAccess middleware checks that the authenticated user is a member
// of the venue addressed by the route. Runs after Auth.
func VenueAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawVenueID := c.Param(VenueParam)
		if rawVenueID == "" {
			_ = c.Error(apperror.NewValidation("venue id is required"))
			c.Abort()
			return
		}

		venueUUID, err := uuid.Parse(rawVenueID)
		if err != nil {
			_ = c.Error(
				apperror.NewValidation("invalid venue id").
					WithDetail("value", rawVenueID),
			)
			c.Abort()
			return
		}
		venueID := venueUUID.String()

		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if !user.HasVenueAccess(venueID) {
			_ = c.Error(
				apperror.NewForbidden("no access to venue").
					WithDetail("venue_id", venueID),
			)
			c.Abort()
			return
		}

		c.Set("venue_id", venueID)

		c.Next()
	}
}

// GetVenueID retrieves the validated venue ID from the Gin context.
// Returns empty string if VenueAccess did not run.
func GetVenueID(c *gin.Context) string {
	if v, exists := c.Get("venue_id"); exists {
		if venueID, ok := v.(string); ok {
			return venueID
		}
	}
	return ""
}
