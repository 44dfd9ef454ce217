package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

func setupScheduleRepoTest(t *testing.T) (*ScheduleRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ScheduleRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func assignmentRows(assignments ...models.Assignment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "driver_id", "route_id", "shift_start", "shift_end",
		"assigned_date", "is_active", "created_at", "updated_at",
	})
	for _, a := range assignments {
		rows.AddRow(a.ID, a.DriverID, a.RouteID, a.ShiftStart, a.ShiftEnd,
			a.AssignedDate, a.IsActive, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func TestListActiveByDriver(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	now := time.Now()
	expected := []models.Assignment{
		{ID: uuid.New(), DriverID: driverID, RouteID: uuid.New(), ShiftStart: "08:00", ShiftEnd: "12:00", AssignedDate: "2026-03-02", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), DriverID: driverID, RouteID: uuid.New(), ShiftStart: "13:00", ShiftEnd: "17:00", AssignedDate: "2026-03-02", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectQuery(`SELECT (.+) FROM assignments`).
		WithArgs(driverID).
		WillReturnRows(assignmentRows(expected...))

	assignments, err := repo.ListActiveByDriver(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "08:00", assignments[0].ShiftStart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByDriver_Empty(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM assignments`).
		WithArgs(driverID).
		WillReturnRows(assignmentRows())

	assignments, err := repo.ListActiveByDriver(context.Background(), driverID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM assignments WHERE id`).
		WithArgs(id).
		WillReturnRows(assignmentRows())

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorContains(t, err, "not found")
}

func TestCreateAssignment(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	now := time.Now()
	assignment := &models.Assignment{
		ID:           uuid.New(),
		DriverID:     uuid.New(),
		RouteID:      uuid.New(),
		ShiftStart:   "08:00",
		ShiftEnd:     "12:00",
		AssignedDate: "2026-03-02",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO assignments`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), assignment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignment_DBError(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO assignments`).
		WillReturnError(errors.New("duplicate key"))

	err := repo.Create(context.Background(), &models.Assignment{ID: uuid.New()})
	assert.Error(t, err)
}

func TestUpdateAssignment(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	now := time.Now()
	assignment := &models.Assignment{
		ID:           uuid.New(),
		DriverID:     uuid.New(),
		RouteID:      uuid.New(),
		ShiftStart:   "14:00",
		ShiftEnd:     "20:00",
		AssignedDate: "2026-03-02",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`UPDATE assignments`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), assignment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssignment_NotFound(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE assignments`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Assignment{ID: uuid.New()})
	assert.ErrorContains(t, err, "not found")
}

func TestSetActive(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec(`UPDATE assignments SET is_active`).
		WithArgs(false, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetActive(context.Background(), id, false))
}

func TestSetActive_NotFound(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec(`UPDATE assignments SET is_active`).
		WithArgs(true, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), id, true)
	assert.ErrorContains(t, err, "not found")
}

func TestDeleteAssignment(t *testing.T) {
	repo, mock, cleanup := setupScheduleRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM assignments`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
}
