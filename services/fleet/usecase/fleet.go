package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/fleet"
)

// FleetUC implements the fleet.FleetUC interface
type FleetUC struct {
	cfg       *models.Config
	userRepo  fleet.UserRepo
	routeRepo fleet.RouteRepo
	busRepo   fleet.BusRepo
	nowFn     func() time.Time
}

// NewFleetUC creates a new fleet management use case
func NewFleetUC(cfg *models.Config, userRepo fleet.UserRepo, routeRepo fleet.RouteRepo, busRepo fleet.BusRepo) fleet.FleetUC {
	return &FleetUC{
		cfg:       cfg,
		userRepo:  userRepo,
		routeRepo: routeRepo,
		busRepo:   busRepo,
		nowFn:     time.Now,
	}
}

// GetUser returns an account by ID
func (u *FleetUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// ListDrivers returns every active driver account
func (u *FleetUC) ListDrivers(ctx context.Context) ([]models.User, error) {
	return u.userRepo.ListDrivers(ctx)
}

// SetUserActive enables or disables an account
func (u *FleetUC) SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return u.userRepo.SetUserActive(ctx, id, isActive)
}

// CreateRoute validates and persists a new route
func (u *FleetUC) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.Name == "" {
		return fmt.Errorf("route name is required")
	}

	route.ID = uuid.New()
	now := u.nowFn()
	route.CreatedAt = now
	route.UpdatedAt = now
	return u.routeRepo.CreateRoute(ctx, route)
}

// GetRoute returns a route by ID
func (u *FleetUC) GetRoute(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	return u.routeRepo.GetRouteByID(ctx, id)
}

// ListRoutes returns every route
func (u *FleetUC) ListRoutes(ctx context.Context) ([]models.Route, error) {
	return u.routeRepo.ListRoutes(ctx)
}

// UpdateRoute rewrites an existing route
func (u *FleetUC) UpdateRoute(ctx context.Context, route *models.Route) error {
	if route.Name == "" {
		return fmt.Errorf("route name is required")
	}

	route.UpdatedAt = u.nowFn()
	return u.routeRepo.UpdateRoute(ctx, route)
}

// DeleteRoute removes a route
func (u *FleetUC) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return u.routeRepo.DeleteRoute(ctx, id)
}

// CreateBus validates and persists a new bus
func (u *FleetUC) CreateBus(ctx context.Context, bus *models.Bus) error {
	if bus.Plate == "" {
		return fmt.Errorf("bus plate is required")
	}
	if bus.Capacity <= 0 {
		return fmt.Errorf("bus capacity must be positive")
	}
	if bus.RouteID != nil {
		if _, err := u.routeRepo.GetRouteByID(ctx, *bus.RouteID); err != nil {
			return fmt.Errorf("route %s: %w", bus.RouteID, err)
		}
	}

	bus.ID = uuid.New()
	now := u.nowFn()
	bus.CreatedAt = now
	bus.UpdatedAt = now
	return u.busRepo.CreateBus(ctx, bus)
}

// GetBus returns a bus by ID
func (u *FleetUC) GetBus(ctx context.Context, id uuid.UUID) (*models.Bus, error) {
	return u.busRepo.GetBusByID(ctx, id)
}

// ListBuses returns every bus in the fleet
func (u *FleetUC) ListBuses(ctx context.Context) ([]models.Bus, error) {
	return u.busRepo.ListBuses(ctx)
}

// UpdateBus rewrites an existing bus
func (u *FleetUC) UpdateBus(ctx context.Context, bus *models.Bus) error {
	if bus.Plate == "" {
		return fmt.Errorf("bus plate is required")
	}
	if bus.RouteID != nil {
		if _, err := u.routeRepo.GetRouteByID(ctx, *bus.RouteID); err != nil {
			return fmt.Errorf("route %s: %w", bus.RouteID, err)
		}
	}

	bus.UpdatedAt = u.nowFn()
	return u.busRepo.UpdateBus(ctx, bus)
}

// DeleteBus removes a bus
func (u *FleetUC) DeleteBus(ctx context.Context, id uuid.UUID) error {
	return u.busRepo.DeleteBus(ctx, id)
}
