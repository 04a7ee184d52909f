// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"barstock/internal/domain/auth"
	"barstock/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeleted(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a venue-scoped
// catalog. Reads are open to every venue member; writes require the owner
// or manager role.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	manage := middleware.RequireRole(auth.RoleOwner, auth.RoleManager)

	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", manage, handler.Create)
	group.PUT("/:id", manage, handler.Update)
	group.DELETE("/:id", manage, handler.Delete)
	group.POST("/:id/deleted", manage, handler.SetDeleted)
}
