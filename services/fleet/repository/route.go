package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

// CreateRoute inserts a new route
func (r *FleetRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	query := `
		INSERT INTO routes (id, name, origin, destination, stops,
			is_active, created_at, updated_at
		) VALUES (:id, :name, :origin, :destination, :stops,
			:is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, route); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// GetRouteByID retrieves a route by ID
func (r *FleetRepo) GetRouteByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	query := `
		SELECT id, name, origin, destination, stops, is_active, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route not found")
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// ListRoutes returns every route
func (r *FleetRepo) ListRoutes(ctx context.Context) ([]models.Route, error) {
	query := `
		SELECT id, name, origin, destination, stops, is_active, created_at, updated_at
		FROM routes
		ORDER BY name ASC
	`

	var routes []models.Route
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// UpdateRoute rewrites an existing route
func (r *FleetRepo) UpdateRoute(ctx context.Context, route *models.Route) error {
	query := `
		UPDATE routes
		SET name = :name, origin = :origin, destination = :destination,
			stops = :stops, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, route)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("route not found")
	}
	return nil
}

// DeleteRoute removes a route
func (r *FleetRepo) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM routes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("route not found")
	}
	return nil
}
