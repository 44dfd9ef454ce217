package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ncastellanos/flotilla/services/fleet UserRepo,RouteRepo,BusRepo

// UserRepo represents the account repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListDrivers(ctx context.Context) ([]models.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error
}

// RouteRepo represents the route repository interface
type RouteRepo interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
}

// BusRepo represents the bus repository interface
type BusRepo interface {
	CreateBus(ctx context.Context, bus *models.Bus) error
	GetBusByID(ctx context.Context, id uuid.UUID) (*models.Bus, error)
	ListBuses(ctx context.Context) ([]models.Bus, error)
	UpdateBus(ctx context.Context, bus *models.Bus) error
	DeleteBus(ctx context.Context, id uuid.UUID) error
}
