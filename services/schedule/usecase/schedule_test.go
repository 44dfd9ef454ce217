package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/schedule/mocks"
)

func newTestUC(t *testing.T, repo *mocks.MockScheduleRepo, now time.Time) *ScheduleUC {
	t.Helper()
	cfg := &models.Config{}
	cfg.Schedule.Timezone = "America/Bogota"

	uc, err := NewScheduleUC(cfg, repo)
	require.NoError(t, err)

	impl := uc.(*ScheduleUC)
	impl.nowFn = func() time.Time { return now }
	return impl
}

func bogotaTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return time.Date(2026, 3, 2, hour, min, 0, 0, loc)
}

func TestNewScheduleUC_InvalidTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{}
	cfg.Schedule.Timezone = "Mars/Olympus"

	_, err := NewScheduleUC(cfg, mocks.NewMockScheduleRepo(ctrl))
	assert.Error(t, err)
}

func TestGetDriverShifts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	assignments := []models.Assignment{
		{ID: uuid.New(), DriverID: driverID, ShiftStart: "08:00", ShiftEnd: "12:00", IsActive: true},
		{ID: uuid.New(), DriverID: driverID, ShiftStart: "13:00", ShiftEnd: "17:00", IsActive: true},
	}

	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().ListActiveByDriver(gomock.Any(), driverID).Return(assignments, nil)

	uc := newTestUC(t, repo, bogotaTime(t, 10, 30))

	view, err := uc.GetDriverShifts(context.Background(), driverID)
	require.NoError(t, err)
	require.NotNil(t, view.Current)
	require.NotNil(t, view.Next)
	assert.Equal(t, "08:00", view.Current.ShiftStart)
	assert.Equal(t, "13:00", view.Next.ShiftStart)
}

func TestGetDriverShifts_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().ListActiveByDriver(gomock.Any(), driverID).Return(nil, errors.New("connection refused"))

	uc := newTestUC(t, repo, bogotaTime(t, 10, 30))

	_, err := uc.GetDriverShifts(context.Background(), driverID)
	assert.Error(t, err)
}

func TestGetShiftQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	assignments := []models.Assignment{
		{ID: uuid.New(), DriverID: driverID, ShiftStart: "13:00", ShiftEnd: "17:00", IsActive: true},
		{ID: uuid.New(), DriverID: driverID, ShiftStart: "08:00", ShiftEnd: "12:00", IsActive: true},
	}

	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().ListActiveByDriver(gomock.Any(), driverID).Return(assignments, nil)

	uc := newTestUC(t, repo, bogotaTime(t, 12, 30))

	entries, err := uc.GetShiftQueue(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ShiftCompleted, entries[0].Status)
	assert.Equal(t, models.ShiftPending, entries[1].Status)
}

func TestCreateAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := &models.AssignmentRequest{
		DriverID:   uuid.New(),
		RouteID:    uuid.New(),
		ShiftStart: "08:00",
		ShiftEnd:   "12:00",
		IsActive:   true,
	}

	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))

	created, err := uc.CreateAssignment(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "2026-03-02", created.AssignedDate)
	assert.True(t, created.IsActive)
}

func TestCreateAssignment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		req  *models.AssignmentRequest
	}{
		{
			name: "overnight window rejected",
			req:  &models.AssignmentRequest{DriverID: uuid.New(), RouteID: uuid.New(), ShiftStart: "22:00", ShiftEnd: "02:00"},
		},
		{
			name: "malformed start",
			req:  &models.AssignmentRequest{DriverID: uuid.New(), RouteID: uuid.New(), ShiftStart: "9:00", ShiftEnd: "12:00"},
		},
		{
			name: "missing driver",
			req:  &models.AssignmentRequest{RouteID: uuid.New(), ShiftStart: "08:00", ShiftEnd: "12:00"},
		},
		{
			name: "missing route",
			req:  &models.AssignmentRequest{DriverID: uuid.New(), ShiftStart: "08:00", ShiftEnd: "12:00"},
		},
	}

	repo := mocks.NewMockScheduleRepo(ctrl)
	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateAssignment(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	existing := &models.Assignment{
		ID:         id,
		DriverID:   uuid.New(),
		RouteID:    uuid.New(),
		ShiftStart: "08:00",
		ShiftEnd:   "12:00",
		IsActive:   true,
	}
	req := &models.AssignmentRequest{
		DriverID:   existing.DriverID,
		RouteID:    existing.RouteID,
		ShiftStart: "09:00",
		ShiftEnd:   "13:00",
		IsActive:   true,
	}

	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))

	updated, err := uc.UpdateAssignment(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.ShiftStart)
	assert.Equal(t, "13:00", updated.ShiftEnd)
}

func TestUpdateAssignment_OvernightRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepo(ctrl)
	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))

	req := &models.AssignmentRequest{
		DriverID:   uuid.New(),
		RouteID:    uuid.New(),
		ShiftStart: "18:00",
		ShiftEnd:   "06:00",
	}
	_, err := uc.UpdateAssignment(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestSetAssignmentActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().SetActive(gomock.Any(), id, false).Return(nil)

	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))
	assert.NoError(t, uc.SetAssignmentActive(context.Background(), id, false))
}

func TestDeleteAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := mocks.NewMockScheduleRepo(ctrl)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	uc := newTestUC(t, repo, bogotaTime(t, 7, 0))
	assert.NoError(t, uc.DeleteAssignment(context.Background(), id))
}
