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
)

// FleetRepo holds the shared database handle for the fleet repositories
type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepo creates the repository backing users, routes and buses
func NewFleetRepo(cfg *models.Config, client *database.PostgresClient) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// CreateUser inserts a new account
func (r *FleetRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, fullname, role,
			is_active, created_at, updated_at
		) VALUES (:id, :username, :password_hash, :fullname, :role,
			:is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves an account by ID
func (r *FleetRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, fullname, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves an account by username
func (r *FleetRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, fullname, role, is_active, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListDrivers returns every active driver account
func (r *FleetRepo) ListDrivers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, password_hash, fullname, role, is_active, created_at, updated_at
		FROM users
		WHERE role = $1 AND is_active = true
		ORDER BY fullname ASC
	`

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, models.RoleDriver); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return users, nil
}

// SetUserActive enables or disables an account
func (r *FleetRepo) SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return fmt.Errorf("failed to set user active: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
