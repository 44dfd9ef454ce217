package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	ws "github.com/ncastellanos/flotilla/internal/pkg/websocket"
	"github.com/ncastellanos/flotilla/services/tracking"
)

// WebSocketHandler serves the live connection shared by drivers and
// viewers. Drivers push location samples upstream; viewers only listen
// for the broadcast fan-out.
type WebSocketHandler struct {
	manager    *ws.Manager
	trackingUC tracking.TrackingUC
}

// NewWebSocketHandler creates a new tracking WebSocket handler
func NewWebSocketHandler(manager *ws.Manager, trackingUC tracking.TrackingUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		trackingUC: trackingUC,
	}
}

// Manager exposes the client registry for the broadcast consumers
func (h *WebSocketHandler) Manager() *ws.Manager {
	return h.manager
}

// HandleWebSocket upgrades the connection and runs the message loop
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.SessionID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role),
		logger.String("session_id", client.SessionID),
	)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("WebSocket client disconnected",
					logger.String("user_id", client.UserID),
				)
				return nil
			}
			return err
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if serr := h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid message format"); serr != nil {
				return serr
			}
			continue
		}

		if err := h.handleMessage(client, conn, &msg); err != nil {
			logger.Error("Error handling websocket message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.ErrorField(err),
			)
		}
	}
}

func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, conn *websocket.Conn, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(conn, constants.EventPong, nil)
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, conn, msg.Data)
	case constants.EventTransmissionStatus:
		return h.handleTransmissionStatus(client, conn, msg.Data)
	case constants.EventTransmissionStopped:
		return h.handleTransmissionStopped(client, conn)
	default:
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, fmt.Sprintf("Unknown event: %s", msg.Event))
	}
}

// handleLocationUpdate processes a driver's pushed location sample. The
// driver identity comes from the authenticated session, never from the
// payload.
func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	if client.Role != models.RoleDriver {
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized, "Only drivers may push locations")
	}

	var req models.LocationUpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid location format")
	}

	if _, err := h.trackingUC.UpdateLocation(context.Background(), client.UserID, &req); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidLocation, err.Error())
	}
	return nil
}

func (h *WebSocketHandler) handleTransmissionStatus(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	if client.Role != models.RoleDriver {
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized, "Only drivers may change transmission status")
	}

	var req models.TransmissionStatusRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid status format")
	}

	if err := h.trackingUC.SetTransmissionStatus(context.Background(), client.UserID, req.IsTransmitting); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInternalError, err.Error())
	}
	return nil
}

func (h *WebSocketHandler) handleTransmissionStopped(client *models.WebSocketClient, conn *websocket.Conn) error {
	if client.Role != models.RoleDriver {
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized, "Only drivers may stop transmission")
	}

	if err := h.trackingUC.StopTransmission(context.Background(), client.UserID); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInternalError, err.Error())
	}
	return nil
}
