// Package v1 provides HTTP API version 1.
package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"barstock/internal/domain/auth"
	"barstock/internal/domain/catalogs/area"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/domain/catalogs/product"
	"barstock/internal/domain/catalogs/section"
	"barstock/internal/domain/catalogs/supplier"
	"barstock/internal/domain/catalogs/venue"
	"barstock/internal/domain/order"
	"barstock/internal/domain/placement"
	"barstock/internal/domain/report"
	"barstock/internal/infrastructure/http/v1/handlers"
	"barstock/internal/infrastructure/http/v1/middleware"
	"barstock/internal/infrastructure/storage/postgres"
	"barstock/internal/infrastructure/storage/postgres/catalog_repo"
	"barstock/internal/infrastructure/storage/postgres/document_repo"
	"barstock/internal/infrastructure/storage/postgres/placement_repo"
	"barstock/internal/infrastructure/storage/postgres/report_repo"
	"barstock/pkg/logger"
	"barstock/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (used for health checks and wiring).
	Pool *postgres.Pool

	// TxManager runs repository operations and transactions.
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication and membership endpoints
	AuthService *auth.Service

	// Numerator for order number generation
	Numerator *numerator.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")

	registerAuthRoutes(v1, cfg)

	// Everything below requires a valid token.
	protected := v1.Group("")
	protected.Use(middleware.Auth(cfg.JWTValidator))

	baseHandler := handlers.NewBaseHandler()
	txm := cfg.TxManager

	venueRepo := catalog_repo.NewVenueRepo(txm)
	venueService := venue.NewService(venueRepo, txm)
	venueHandler := handlers.NewVenueHandler(baseHandler, venueService, cfg.AuthService)

	// Venue collection: list is filtered by token memberships, creating a
	// venue makes the caller its owner.
	protected.GET("/venues", venueHandler.List)
	protected.POST("/venues", venueHandler.Create)

	// Venue-scoped resources. VenueAccess checks the :venue_id path
	// parameter against the caller's memberships.
	scoped := protected.Group("/venues/:venue_id")
	scoped.Use(middleware.VenueAccess())

	manage := middleware.RequireRole(auth.RoleOwner, auth.RoleManager)
	ownerOnly := middleware.RequireRole(auth.RoleOwner)

	scoped.GET("", venueHandler.Get)
	scoped.PUT("", manage, venueHandler.Update)
	scoped.DELETE("", ownerOnly, venueHandler.Delete)

	members := scoped.Group("/members")
	{
		members.GET("", venueHandler.ListMembers)
		members.POST("", manage, venueHandler.AssignMember)
		members.DELETE("/:user_id", manage, venueHandler.RevokeMember)
	}

	if err := registerVenueRoutes(scoped, baseHandler, cfg); err != nil {
		return nil, err
	}

	return router, nil
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerVenueRoutes wires the venue-scoped domain: catalogs, placements,
// orders and stock reports. Repos and services are created once and share
// the TxManager.
func registerVenueRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) error {
	txm := cfg.TxManager
	manage := middleware.RequireRole(auth.RoleOwner, auth.RoleManager)

	areaRepo := catalog_repo.NewAreaRepo(txm)
	sectionRepo := catalog_repo.NewSectionRepo(txm)
	supplierRepo := catalog_repo.NewSupplierRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	itemRepo := catalog_repo.NewItemRepo(txm)

	areaService := area.NewService(areaRepo, txm)
	sectionService := section.NewService(sectionRepo, areaRepo, txm)
	supplierService := supplier.NewService(supplierRepo, txm)
	productService := product.NewService(productRepo, txm)
	itemService := item.NewService(itemRepo, productRepo, txm)

	RegisterCatalogRoutes(rg.Group("/areas"), handlers.NewAreaHandler(baseHandler, areaService))
	RegisterCatalogRoutes(rg.Group("/sections"), handlers.NewSectionHandler(baseHandler, sectionService))
	RegisterCatalogRoutes(rg.Group("/suppliers"), handlers.NewSupplierHandler(baseHandler, supplierService))
	RegisterCatalogRoutes(rg.Group("/products"), handlers.NewProductHandler(baseHandler, productService))
	RegisterCatalogRoutes(rg.Group("/items"), handlers.NewItemHandler(baseHandler, itemService))

	// --- PLACEMENTS ---
	placementRepo := placement_repo.NewPlacementRepo(txm)
	placementService := placement.NewService(placementRepo, itemRepo, sectionRepo, txm)
	placementHandler := handlers.NewPlacementHandler(baseHandler, placementService)

	placements := rg.Group("/placements")
	{
		placements.GET("", placementHandler.List)
		placements.GET("/:id", placementHandler.Get)
		placements.POST("", manage, placementHandler.Create)
		placements.DELETE("/:id", manage, placementHandler.Delete)
		// Bulk volume updates are open to every member: staff submit counts.
		placements.PUT("", placementHandler.BulkUpdate)
	}

	// --- ORDERS ---
	orderRepo := document_repo.NewOrderRepo(txm)
	orderService := order.NewService(orderRepo, cfg.Numerator, txm)
	orderHandler := handlers.NewOrderHandler(baseHandler, orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("", manage, orderHandler.Create)
		orders.PUT("/:id", manage, orderHandler.Update)
		orders.POST("/:id/status", manage, orderHandler.ChangeStatus)
		orders.DELETE("/:id", manage, orderHandler.Delete)
	}

	// --- STOCK REPORTS ---
	snapshotRepo, err := report_repo.NewSnapshotRepo(txm)
	if err != nil {
		return fmt.Errorf("create snapshot repo: %w", err)
	}
	reportService := report.NewService(
		snapshotRepo,
		placementRepo,
		itemRepo,
		productRepo,
		areaRepo,
		sectionRepo,
		orderRepo,
		txm,
	)
	reportHandler := handlers.NewReportHandler(baseHandler, reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", reportHandler.List)
		reports.GET("/live", reportHandler.Live)
		reports.GET("/usage", reportHandler.Usage)
		reports.GET("/:id", reportHandler.Get)
		reports.POST("", manage, reportHandler.Generate)
		reports.DELETE("/:id", manage, reportHandler.Delete)
	}

	return nil
}
