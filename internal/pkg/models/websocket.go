package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is one authenticated connection in the registry.
// SessionID is unique per connection so the same user can hold several
// viewer tabs open at once.
type WebSocketClient struct {
	SessionID string
	UserID    string
	Role      string
	Conn      *websocket.Conn
}

// WebSocketClaims are the JWT claims carried on a WebSocket upgrade
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LocationEvent is the broadcast payload for a position change
type LocationEvent struct {
	DriverID       string `json:"driver_id"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	IsTransmitting bool   `json:"is_transmitting"`
	Timestamp      int64  `json:"timestamp"`
}

// TransmissionStatusEvent is the broadcast payload for a flag flip
type TransmissionStatusEvent struct {
	DriverID       string `json:"driver_id"`
	IsTransmitting bool   `json:"is_transmitting"`
}

// TransmissionStoppedEvent instructs viewers to drop the driver from any
// locally cached active list, not merely flip a flag.
type TransmissionStoppedEvent struct {
	DriverID string `json:"driver_id"`
}
