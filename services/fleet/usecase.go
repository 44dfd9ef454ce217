package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ncastellanos/flotilla/services/fleet AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// FleetUC represents the fleet management usecase interface
type FleetUC interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListDrivers(ctx context.Context) ([]models.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error

	CreateRoute(ctx context.Context, route *models.Route) error
	GetRoute(ctx context.Context, id uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	CreateBus(ctx context.Context, bus *models.Bus) error
	GetBus(ctx context.Context, id uuid.UUID) (*models.Bus, error)
	ListBuses(ctx context.Context) ([]models.Bus, error)
	UpdateBus(ctx context.Context, bus *models.Bus) error
	DeleteBus(ctx context.Context, id uuid.UUID) error
}
