package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ncastellanos/flotilla/services/schedule ScheduleRepo

// ScheduleRepo represents the assignment repository interface
type ScheduleRepo interface {
	ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Assignment, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Assignment, error)
	ListByRoute(ctx context.Context, routeID uuid.UUID) ([]models.Assignment, error)
	ListAll(ctx context.Context) ([]models.Assignment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, assignment *models.Assignment) error
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
