package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/middleware"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/fleet/handler/http"
)

// Handler coordinates the HTTP handlers for the fleet service
type Handler struct {
	authHandler  *http.AuthHandler
	fleetHandler *http.FleetHandler
	cfg          *models.Config
}

// NewHandler creates and initializes the fleet handlers
func NewHandler(authHandler *http.AuthHandler, fleetHandler *http.FleetHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler:  authHandler,
		fleetHandler: fleetHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the fleet routes on the shared Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Account registration and toggling are admin operations.
	userGroup := protected.Group("/users")
	userGroup.POST("", h.authHandler.Register, middleware.RequireRole(models.RoleAdmin))
	userGroup.GET("/:id", h.fleetHandler.GetUser)
	userGroup.PATCH("/:id/active", h.fleetHandler.SetUserActive, middleware.RequireRole(models.RoleAdmin))

	protected.GET("/drivers", h.fleetHandler.ListDrivers)

	routeGroup := protected.Group("/routes")
	routeGroup.GET("", h.fleetHandler.ListRoutes)
	routeGroup.GET("/:id", h.fleetHandler.GetRoute)
	routeGroup.POST("", h.fleetHandler.CreateRoute, middleware.RequireRole(models.RoleAdmin))
	routeGroup.PUT("/:id", h.fleetHandler.UpdateRoute, middleware.RequireRole(models.RoleAdmin))
	routeGroup.DELETE("/:id", h.fleetHandler.DeleteRoute, middleware.RequireRole(models.RoleAdmin))

	busGroup := protected.Group("/buses")
	busGroup.GET("", h.fleetHandler.ListBuses)
	busGroup.GET("/:id", h.fleetHandler.GetBus)
	busGroup.POST("", h.fleetHandler.CreateBus, middleware.RequireRole(models.RoleAdmin))
	busGroup.PUT("/:id", h.fleetHandler.UpdateBus, middleware.RequireRole(models.RoleAdmin))
	busGroup.DELETE("/:id", h.fleetHandler.DeleteBus, middleware.RequireRole(models.RoleAdmin))
}
