package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/tracking"
)

// TrackingHandler handles HTTP requests for the location ledger
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// ListTransmitting returns the current record of every transmitting
// driver. Viewers poll this endpoint and treat it as the source of
// truth for which drivers exist.
func (h *TrackingHandler) ListTransmitting(c echo.Context) error {
	records, err := h.trackingUC.ListTransmitting(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list transmitting drivers", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list transmitting drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transmitting drivers retrieved successfully", records)
}

// ListLocations returns the last known record of every driver,
// transmitting or not.
func (h *TrackingHandler) ListLocations(c echo.Context) error {
	records, err := h.trackingUC.ListLocations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list driver locations", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list driver locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", records)
}

// GetDriverLocation returns a single driver's current record
func (h *TrackingHandler) GetDriverLocation(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	record, err := h.trackingUC.GetDriverLocation(c.Request().Context(), driverID.String())
	if err != nil {
		logger.Error("Failed to get driver location",
			logger.ErrorField(err),
			logger.String("driver_id", driverID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get driver location")
	}
	if record == nil {
		return utils.NotFoundResponse(c, "No location recorded for driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", record)
}

// UpdateDriverLocation ingests a location sample over the durable HTTP
// path. The same usecase also serves the WebSocket push path.
func (h *TrackingHandler) UpdateDriverLocation(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.trackingUC.UpdateLocation(c.Request().Context(), driverID.String(), &req)
	if err != nil {
		logger.Warn("Rejected location update",
			logger.ErrorField(err),
			logger.String("driver_id", driverID.String()),
		)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", record)
}

// SetTransmissionStatus flips the driver's transmitting flag
func (h *TrackingHandler) SetTransmissionStatus(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req models.TransmissionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.trackingUC.SetTransmissionStatus(c.Request().Context(), driverID.String(), req.IsTransmitting); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update transmission status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transmission status updated successfully", nil)
}

// StopTransmission is the teardown beacon drivers fire on page unload.
// It acknowledges immediately and is safe to repeat; browsers may send
// it with no ability to read the response.
func (h *TrackingHandler) StopTransmission(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	if err := h.trackingUC.StopTransmission(c.Request().Context(), driverID.String()); err != nil {
		logger.Error("Failed to stop transmission",
			logger.ErrorField(err),
			logger.String("driver_id", driverID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to stop transmission")
	}

	return c.NoContent(http.StatusNoContent)
}
