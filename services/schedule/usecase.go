package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ncastellanos/flotilla/services/schedule ScheduleUC

// ScheduleUC represents the schedule usecase interface
type ScheduleUC interface {
	GetDriverShifts(ctx context.Context, driverID uuid.UUID) (*models.ShiftView, error)
	GetShiftQueue(ctx context.Context, driverID uuid.UUID) ([]models.QueueEntry, error)
	GetRouteSchedule(ctx context.Context, routeID uuid.UUID) ([]models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, req *models.AssignmentRequest) (*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, req *models.AssignmentRequest) (*models.Assignment, error)
	SetAssignmentActive(ctx context.Context, id uuid.UUID, isActive bool) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}
