package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

func setupFleetRepoTest(t *testing.T) (*FleetRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &FleetRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "username", "password_hash", "fullname", "role", "is_active", "created_at", "updated_at",
	})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.PasswordHash, u.FullName, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     "conductor1",
		PasswordHash: "$2a$10$hash",
		FullName:     "Carlos Mendoza",
		Role:         models.RoleDriver,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.CreateUser(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	now := time.Now()
	expected := models.User{
		ID: uuid.New(), Username: "conductor1", PasswordHash: "$2a$10$hash",
		FullName: "Carlos Mendoza", Role: models.RoleDriver, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("conductor1").
		WillReturnRows(userRows(expected))

	user, err := repo.GetUserByUsername(context.Background(), "conductor1")
	require.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
	assert.Equal(t, models.RoleDriver, user.Role)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("ghost").
		WillReturnRows(userRows())

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorContains(t, err, "not found")
}

func TestListDrivers(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	now := time.Now()
	driver := models.User{
		ID: uuid.New(), Username: "conductor1", Role: models.RoleDriver,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(models.RoleDriver).
		WillReturnRows(userRows(driver))

	drivers, err := repo.ListDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, driver.ID, drivers[0].ID)
}
