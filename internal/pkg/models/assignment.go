package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift queue statuses
const (
	ShiftPending    = "pending"
	ShiftInProgress = "in_progress"
	ShiftCompleted  = "completed"
)

// Assignment binds one driver to one route for a daily time-of-day window.
// ShiftStart and ShiftEnd are civil HH:MM values interpreted in the
// operational timezone; they carry no date and no zone of their own.
type Assignment struct {
	ID           uuid.UUID `json:"id" db:"id"`
	DriverID     uuid.UUID `json:"driver_id" db:"driver_id"`
	RouteID      uuid.UUID `json:"route_id" db:"route_id"`
	ShiftStart   string    `json:"shift_start" db:"shift_start"`
	ShiftEnd     string    `json:"shift_end" db:"shift_end"`
	AssignedDate string    `json:"assigned_date" db:"assigned_date"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ShiftView is the resolved current/next pair for a driver. Both fields
// are nil when the driver has no active assignments; that is a valid
// displayable state, not an error.
type ShiftView struct {
	Current *Assignment `json:"current"`
	Next    *Assignment `json:"next"`
}

// QueueEntry is one assignment classified against the current wall clock
type QueueEntry struct {
	Assignment Assignment `json:"assignment"`
	Status     string     `json:"status"`
}

// AssignmentRequest is the create/update payload for an assignment
type AssignmentRequest struct {
	DriverID     uuid.UUID `json:"driver_id"`
	RouteID      uuid.UUID `json:"route_id"`
	ShiftStart   string    `json:"shift_start"`
	ShiftEnd     string    `json:"shift_end"`
	AssignedDate string    `json:"assigned_date"`
	IsActive     bool      `json:"is_active"`
}
