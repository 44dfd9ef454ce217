package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/middleware"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/schedule/handler/http"
)

// Handler coordinates the HTTP handlers for the schedule service
type Handler struct {
	scheduleHandler *http.ScheduleHandler
	cfg             *models.Config
}

// NewHandler creates and initializes the schedule handlers
func NewHandler(scheduleHandler *http.ScheduleHandler, cfg *models.Config) *Handler {
	return &Handler{
		scheduleHandler: scheduleHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the schedule routes on the shared Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Driver-facing shift resolution
	driverGroup := protected.Group("/drivers")
	driverGroup.GET("/:id/shifts", h.scheduleHandler.GetDriverShifts)
	driverGroup.GET("/:id/shifts/queue", h.scheduleHandler.GetShiftQueue)

	routeGroup := protected.Group("/routes")
	routeGroup.GET("/:id/schedule", h.scheduleHandler.GetRouteSchedule)

	// Assignment administration
	adminGroup := protected.Group("/assignments", middleware.RequireRole(models.RoleAdmin))
	adminGroup.GET("", h.scheduleHandler.ListAssignments)
	adminGroup.POST("", h.scheduleHandler.CreateAssignment)
	adminGroup.GET("/:id", h.scheduleHandler.GetAssignment)
	adminGroup.PUT("/:id", h.scheduleHandler.UpdateAssignment)
	adminGroup.PATCH("/:id/active", h.scheduleHandler.SetAssignmentActive)
	adminGroup.DELETE("/:id", h.scheduleHandler.DeleteAssignment)
}
