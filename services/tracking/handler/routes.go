package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/middleware"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	trackinghttp "github.com/ncastellanos/flotilla/services/tracking/handler/http"
	trackingnats "github.com/ncastellanos/flotilla/services/tracking/handler/nats"
	trackingws "github.com/ncastellanos/flotilla/services/tracking/handler/websocket"
)

// Handler coordinates all protocol handlers for the tracking service
type Handler struct {
	trackingHandler *trackinghttp.TrackingHandler
	wsHandler       *trackingws.WebSocketHandler
	natsHandler     *trackingnats.NatsHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all tracking handlers
func NewHandler(
	trackingHandler *trackinghttp.TrackingHandler,
	wsHandler *trackingws.WebSocketHandler,
	natsHandler *trackingnats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		trackingHandler: trackingHandler,
		wsHandler:       wsHandler,
		natsHandler:     natsHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the tracking routes and starts the NATS
// consumers that feed the WebSocket fan-out.
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	if err := h.natsHandler.InitConsumers(); err != nil {
		return fmt.Errorf("failed to initialize tracking consumers: %w", err)
	}

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	driverGroup := protected.Group("/drivers")
	driverGroup.GET("/locations", h.trackingHandler.ListLocations)
	driverGroup.GET("/transmitting", h.trackingHandler.ListTransmitting)
	driverGroup.GET("/:id/location", h.trackingHandler.GetDriverLocation)

	// Location writes are restricted to the driver themself or an admin.
	selfGroup := driverGroup.Group("", middleware.RequireSelfOrAdmin())
	selfGroup.POST("/:id/location", h.trackingHandler.UpdateDriverLocation)
	selfGroup.PATCH("/:id/transmission", h.trackingHandler.SetTransmissionStatus)
	selfGroup.POST("/:id/location/stop", h.trackingHandler.StopTransmission)

	// The WebSocket endpoint authenticates during the upgrade handshake
	// because browsers cannot set headers on WebSocket requests reliably.
	e.GET("/ws/tracking", h.wsHandler.HandleWebSocket)

	// Internal read path for non-interactive consumers (display walls,
	// ops scripts) that hold an API key instead of a user session.
	internalGroup := e.Group("/internal", middleware.ValidateAPIKey("watch-cli", "display-wall", "ops-scripts"))
	internalGroup.GET("/drivers/locations", h.trackingHandler.ListLocations)
	internalGroup.GET("/drivers/transmitting", h.trackingHandler.ListTransmitting)

	return nil
}

// Stop shuts down the NATS consumers
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
