package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/schedule"
)

// ScheduleHandler handles HTTP requests for shift and assignment operations
type ScheduleHandler struct {
	scheduleUC schedule.ScheduleUC
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUC schedule.ScheduleUC) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: scheduleUC,
	}
}

// GetDriverShifts returns the resolved current and next shift for a driver
func (h *ScheduleHandler) GetDriverShifts(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	view, err := h.scheduleUC.GetDriverShifts(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to resolve driver shifts",
			logger.ErrorField(err),
			logger.String("driver_id", driverID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to resolve shifts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Shifts resolved successfully", view)
}

// GetShiftQueue returns the driver's classified shift queue
func (h *ScheduleHandler) GetShiftQueue(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	entries, err := h.scheduleUC.GetShiftQueue(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to build shift queue",
			logger.ErrorField(err),
			logger.String("driver_id", driverID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to build shift queue")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Shift queue retrieved successfully", entries)
}

// GetRouteSchedule returns every assignment on a route
func (h *ScheduleHandler) GetRouteSchedule(c echo.Context) error {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	assignments, err := h.scheduleUC.GetRouteSchedule(c.Request().Context(), routeID)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to retrieve route schedule")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route schedule retrieved successfully", assignments)
}

// ListAssignments returns every assignment in the system
func (h *ScheduleHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.scheduleUC.ListAssignments(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list assignments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignments retrieved successfully", assignments)
}

// GetAssignment returns a single assignment
func (h *ScheduleHandler) GetAssignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assignment ID")
	}

	assignment, err := h.scheduleUC.GetAssignment(c.Request().Context(), id)
	if err != nil {
		return utils.NotFoundResponse(c, "Assignment not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment retrieved successfully", assignment)
}

// CreateAssignment handles assignment creation requests
func (h *ScheduleHandler) CreateAssignment(c echo.Context) error {
	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for assignment creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateAssignment"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	assignment, err := h.scheduleUC.CreateAssignment(c.Request().Context(), &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Assignment created successfully", assignment)
}

// UpdateAssignment handles assignment update requests
func (h *ScheduleHandler) UpdateAssignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assignment ID")
	}

	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	assignment, err := h.scheduleUC.UpdateAssignment(c.Request().Context(), id, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment updated successfully", assignment)
}

// SetAssignmentActive toggles an assignment in or out of resolution
func (h *ScheduleHandler) SetAssignmentActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assignment ID")
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.scheduleUC.SetAssignmentActive(c.Request().Context(), id, req.IsActive); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update assignment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment updated successfully", nil)
}

// DeleteAssignment removes an assignment
func (h *ScheduleHandler) DeleteAssignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assignment ID")
	}

	if err := h.scheduleUC.DeleteAssignment(c.Request().Context(), id); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to delete assignment")
	}

	return c.NoContent(http.StatusNoContent)
}
