package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ncastellanos/flotilla/internal/pkg/database"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/schedule"
)

const assignmentColumns = `id, driver_id, route_id, shift_start, shift_end, assigned_date, is_active, created_at, updated_at`

// ScheduleRepo implements schedule.ScheduleRepo backed by PostgreSQL
type ScheduleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewScheduleRepo creates a new schedule repository
func NewScheduleRepo(cfg *models.Config, client *database.PostgresClient) schedule.ScheduleRepo {
	return &ScheduleRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// ListActiveByDriver returns the driver's active assignments ordered by
// shift start.
func (r *ScheduleRepo) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM assignments
		WHERE driver_id = $1 AND is_active = true
		ORDER BY shift_start ASC, created_at ASC
	`, assignmentColumns)

	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list active assignments: %w", err)
	}
	return assignments, nil
}

// ListByDriver returns every assignment for a driver, active or not
func (r *ScheduleRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM assignments
		WHERE driver_id = $1
		ORDER BY shift_start ASC, created_at ASC
	`, assignmentColumns)

	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// ListByRoute returns every assignment on a route
func (r *ScheduleRepo) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM assignments
		WHERE route_id = $1
		ORDER BY shift_start ASC, created_at ASC
	`, assignmentColumns)

	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to list assignments for route: %w", err)
	}
	return assignments, nil
}

// ListAll returns every assignment in the system
func (r *ScheduleRepo) ListAll(ctx context.Context) ([]models.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM assignments
		ORDER BY driver_id, shift_start ASC
	`, assignmentColumns)

	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// GetByID retrieves a single assignment
func (r *ScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1`, assignmentColumns)

	var assignment models.Assignment
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("assignment not found")
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

// Create inserts a new assignment
func (r *ScheduleRepo) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (id, driver_id, route_id, shift_start, shift_end,
			assigned_date, is_active, created_at, updated_at
		) VALUES (:id, :driver_id, :route_id, :shift_start, :shift_end,
			:assigned_date, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, assignment); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// Update rewrites an existing assignment
func (r *ScheduleRepo) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET driver_id = :driver_id, route_id = :route_id,
			shift_start = :shift_start, shift_end = :shift_end,
			assigned_date = :assigned_date, is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, assignment)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("assignment not found")
	}
	return nil
}

// SetActive toggles an assignment in or out of shift resolution
func (r *ScheduleRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE assignments SET is_active = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return fmt.Errorf("failed to set assignment active: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("assignment not found")
	}
	return nil
}

// Delete removes an assignment permanently
func (r *ScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assignments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("assignment not found")
	}
	return nil
}
