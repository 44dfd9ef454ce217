package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/fleet"
)

// FleetHandler handles HTTP requests for users, routes and buses
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// GetUser returns an account by ID
func (h *FleetHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.fleetUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListDrivers returns every active driver account
func (h *FleetHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.fleetUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

// SetUserActive enables or disables an account
func (h *FleetHandler) SetUserActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.SetUserActive(c.Request().Context(), id, req.IsActive); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", nil)
}

// CreateRoute handles route creation requests
func (h *FleetHandler) CreateRoute(c echo.Context) error {
	var route models.Route
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.CreateRoute(c.Request().Context(), &route); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", route)
}

// GetRoute returns a route by ID
func (h *FleetHandler) GetRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	route, err := h.fleetUC.GetRoute(c.Request().Context(), id)
	if err != nil {
		return utils.NotFoundResponse(c, "Route not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes returns every route
func (h *FleetHandler) ListRoutes(c echo.Context) error {
	routes, err := h.fleetUC.ListRoutes(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list routes")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", routes)
}

// UpdateRoute rewrites an existing route
func (h *FleetHandler) UpdateRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	var route models.Route
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	route.ID = id

	if err := h.fleetUC.UpdateRoute(c.Request().Context(), &route); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", route)
}

// DeleteRoute removes a route
func (h *FleetHandler) DeleteRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	if err := h.fleetUC.DeleteRoute(c.Request().Context(), id); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to delete route")
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateBus handles bus creation requests
func (h *FleetHandler) CreateBus(c echo.Context) error {
	var bus models.Bus
	if err := c.Bind(&bus); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.CreateBus(c.Request().Context(), &bus); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Bus created successfully", bus)
}

// GetBus returns a bus by ID
func (h *FleetHandler) GetBus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bus ID")
	}

	bus, err := h.fleetUC.GetBus(c.Request().Context(), id)
	if err != nil {
		return utils.NotFoundResponse(c, "Bus not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bus retrieved successfully", bus)
}

// ListBuses returns every bus in the fleet
func (h *FleetHandler) ListBuses(c echo.Context) error {
	buses, err := h.fleetUC.ListBuses(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list buses")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Buses retrieved successfully", buses)
}

// UpdateBus rewrites an existing bus
func (h *FleetHandler) UpdateBus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bus ID")
	}

	var bus models.Bus
	if err := c.Bind(&bus); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	bus.ID = id

	if err := h.fleetUC.UpdateBus(c.Request().Context(), &bus); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bus updated successfully", bus)
}

// DeleteBus removes a bus
func (h *FleetHandler) DeleteBus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bus ID")
	}

	if err := h.fleetUC.DeleteBus(c.Request().Context(), id); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to delete bus")
	}

	return c.NoContent(http.StatusNoContent)
}
