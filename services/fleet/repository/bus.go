package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

// CreateBus inserts a new bus
func (r *FleetRepo) CreateBus(ctx context.Context, bus *models.Bus) error {
	query := `
		INSERT INTO buses (id, plate, capacity, route_id,
			is_active, created_at, updated_at
		) VALUES (:id, :plate, :capacity, :route_id,
			:is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, bus); err != nil {
		return fmt.Errorf("failed to insert bus: %w", err)
	}
	return nil
}

// GetBusByID retrieves a bus by ID
func (r *FleetRepo) GetBusByID(ctx context.Context, id uuid.UUID) (*models.Bus, error) {
	query := `
		SELECT id, plate, capacity, route_id, is_active, created_at, updated_at
		FROM buses
		WHERE id = $1
	`

	var bus models.Bus
	if err := r.db.GetContext(ctx, &bus, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bus not found")
		}
		return nil, fmt.Errorf("failed to get bus: %w", err)
	}
	return &bus, nil
}

// ListBuses returns every bus in the fleet
func (r *FleetRepo) ListBuses(ctx context.Context) ([]models.Bus, error) {
	query := `
		SELECT id, plate, capacity, route_id, is_active, created_at, updated_at
		FROM buses
		ORDER BY plate ASC
	`

	var buses []models.Bus
	if err := r.db.SelectContext(ctx, &buses, query); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}
	return buses, nil
}

// UpdateBus rewrites an existing bus
func (r *FleetRepo) UpdateBus(ctx context.Context, bus *models.Bus) error {
	query := `
		UPDATE buses
		SET plate = :plate, capacity = :capacity, route_id = :route_id,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, bus)
	if err != nil {
		return fmt.Errorf("failed to update bus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("bus not found")
	}
	return nil
}

// DeleteBus removes a bus
func (r *FleetRepo) DeleteBus(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM buses WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("bus not found")
	}
	return nil
}
