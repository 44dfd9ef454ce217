package models

import "time"

// LocationRecord is the single current position of a driver. Coordinates
// are kept as decimal-degree strings so they round-trip through storage
// without floating-point drift; they are parsed to numbers only at the
// point of use.
type LocationRecord struct {
	DriverID       string    `json:"driver_id"`
	Latitude       string    `json:"latitude"`
	Longitude      string    `json:"longitude"`
	IsTransmitting bool      `json:"is_transmitting"`
	Geohash        string    `json:"geohash,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// LocationUpdateRequest is the payload of a driver location sample,
// arriving over both the durable HTTP path and the WebSocket push path.
type LocationUpdateRequest struct {
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	IsTransmitting bool   `json:"is_transmitting"`
}

// TransmissionStatusRequest toggles only the transmitting flag
type TransmissionStatusRequest struct {
	IsTransmitting bool `json:"is_transmitting"`
}
