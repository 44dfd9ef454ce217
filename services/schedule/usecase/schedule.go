package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/schedule"
)

// ScheduleUC implements the schedule.ScheduleUC interface
type ScheduleUC struct {
	cfg   *models.Config
	repo  schedule.ScheduleRepo
	loc   *time.Location
	nowFn func() time.Time
}

// NewScheduleUC creates a new schedule use case
func NewScheduleUC(cfg *models.Config, repo schedule.ScheduleRepo) (schedule.ScheduleUC, error) {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule timezone %q: %w", cfg.Schedule.Timezone, err)
	}

	return &ScheduleUC{
		cfg:   cfg,
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}, nil
}

// GetDriverShifts resolves the current and next shift for a driver from
// their active assignments.
func (s *ScheduleUC) GetDriverShifts(ctx context.Context, driverID uuid.UUID) (*models.ShiftView, error) {
	assignments, err := s.repo.ListActiveByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for driver %s: %w", driverID, err)
	}
	return Resolve(assignments, s.nowFn(), s.loc)
}

// GetShiftQueue returns the driver's active assignments classified
// against the wall clock, ordered by shift start.
func (s *ScheduleUC) GetShiftQueue(ctx context.Context, driverID uuid.UUID) ([]models.QueueEntry, error) {
	assignments, err := s.repo.ListActiveByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for driver %s: %w", driverID, err)
	}
	return Classify(assignments, s.nowFn(), s.loc)
}

// GetRouteSchedule returns all assignments on a route
func (s *ScheduleUC) GetRouteSchedule(ctx context.Context, routeID uuid.UUID) ([]models.Assignment, error) {
	assignments, err := s.repo.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for route %s: %w", routeID, err)
	}
	return assignments, nil
}

// ListAssignments returns every assignment in the system
func (s *ScheduleUC) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return s.repo.ListAll(ctx)
}

// GetAssignment returns a single assignment by ID
func (s *ScheduleUC) GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	return s.repo.GetByID(ctx, id)
}

// validateWindow rejects malformed boundaries and overnight windows.
// A window must close on the same civil day it opens, so ShiftEnd may
// never sort before ShiftStart.
func validateWindow(start, end string) error {
	if err := ValidateShiftTime(start); err != nil {
		return err
	}
	if err := ValidateShiftTime(end); err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("shift end %s is before shift start %s", end, start)
	}
	return nil
}

// CreateAssignment validates and persists a new assignment
func (s *ScheduleUC) CreateAssignment(ctx context.Context, req *models.AssignmentRequest) (*models.Assignment, error) {
	if err := validateWindow(req.ShiftStart, req.ShiftEnd); err != nil {
		return nil, err
	}
	if req.DriverID == uuid.Nil {
		return nil, fmt.Errorf("driver_id is required")
	}
	if req.RouteID == uuid.Nil {
		return nil, fmt.Errorf("route_id is required")
	}

	now := s.nowFn()
	assignment := &models.Assignment{
		ID:           uuid.New(),
		DriverID:     req.DriverID,
		RouteID:      req.RouteID,
		ShiftStart:   req.ShiftStart,
		ShiftEnd:     req.ShiftEnd,
		AssignedDate: req.AssignedDate,
		IsActive:     req.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if assignment.AssignedDate == "" {
		assignment.AssignedDate = now.In(s.loc).Format("2006-01-02")
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment, nil
}

// UpdateAssignment validates and persists changes to an assignment
func (s *ScheduleUC) UpdateAssignment(ctx context.Context, id uuid.UUID, req *models.AssignmentRequest) (*models.Assignment, error) {
	if err := validateWindow(req.ShiftStart, req.ShiftEnd); err != nil {
		return nil, err
	}

	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment %s: %w", id, err)
	}

	assignment.DriverID = req.DriverID
	assignment.RouteID = req.RouteID
	assignment.ShiftStart = req.ShiftStart
	assignment.ShiftEnd = req.ShiftEnd
	if req.AssignedDate != "" {
		assignment.AssignedDate = req.AssignedDate
	}
	assignment.IsActive = req.IsActive
	assignment.UpdatedAt = s.nowFn()

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment %s: %w", id, err)
	}
	return assignment, nil
}

// SetAssignmentActive toggles an assignment in or out of resolution
func (s *ScheduleUC) SetAssignmentActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	if err := s.repo.SetActive(ctx, id, isActive); err != nil {
		return fmt.Errorf("failed to set assignment %s active=%t: %w", id, isActive, err)
	}
	return nil
}

// DeleteAssignment removes an assignment permanently
func (s *ScheduleUC) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", id, err)
	}
	return nil
}
