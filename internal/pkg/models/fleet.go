package models

import (
	"time"

	"github.com/google/uuid"
)

// Route represents a bus route served by the fleet
type Route struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	Stops       string    `json:"stops" db:"stops"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Bus represents a vehicle in the fleet
type Bus struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Plate     string     `json:"plate" db:"plate"`
	Capacity  int        `json:"capacity" db:"capacity"`
	RouteID   *uuid.UUID `json:"route_id,omitempty" db:"route_id"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
