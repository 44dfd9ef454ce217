package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/database"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

func setupTrackingRepoTest(t *testing.T) *TrackingRepo {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &TrackingRepo{
		cfg:         &models.Config{},
		redisClient: &database.RedisClient{Client: client},
	}
}

func sampleRecord(driverID string) *models.LocationRecord {
	return &models.LocationRecord{
		DriverID:       driverID,
		Latitude:       "10.5",
		Longitude:      "-74.2",
		IsTransmitting: true,
		Geohash:        "d6m5kfc",
		Timestamp:      time.Now().Truncate(time.Millisecond),
	}
}

func TestUpsertAndGetLocation(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	driverID := uuid.NewString()
	record := sampleRecord(driverID)
	require.NoError(t, repo.UpsertLocation(ctx, record))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	assert.Equal(t, "10.5", got.Latitude)
	assert.Equal(t, "-74.2", got.Longitude)
	assert.True(t, got.IsTransmitting)
	assert.Equal(t, record.Timestamp.UnixMilli(), got.Timestamp.UnixMilli())
}

func TestUpsertLocation_LatestWins(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	driverID := uuid.NewString()
	first := sampleRecord(driverID)
	require.NoError(t, repo.UpsertLocation(ctx, first))

	second := sampleRecord(driverID)
	second.Latitude = "10.6"
	second.Longitude = "-74.3"
	require.NoError(t, repo.UpsertLocation(ctx, second))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	assert.Equal(t, "10.6", got.Latitude)
	assert.Equal(t, "-74.3", got.Longitude)

	// Still exactly one ledger entry for the driver.
	records, err := repo.ListTransmitting(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGetLocation_AbsentIsNotAnError(t *testing.T) {
	repo := setupTrackingRepoTest(t)

	got, err := repo.GetLocation(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAll_IncludesIdleDrivers(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	active := sampleRecord(uuid.NewString())
	require.NoError(t, repo.UpsertLocation(ctx, active))

	idle := sampleRecord(uuid.NewString())
	idle.IsTransmitting = false
	require.NoError(t, repo.UpsertLocation(ctx, idle))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestListAll_Empty(t *testing.T) {
	repo := setupTrackingRepoTest(t)

	records, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListTransmitting(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	active := sampleRecord(uuid.NewString())
	require.NoError(t, repo.UpsertLocation(ctx, active))

	idle := sampleRecord(uuid.NewString())
	idle.IsTransmitting = false
	require.NoError(t, repo.UpsertLocation(ctx, idle))

	records, err := repo.ListTransmitting(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, active.DriverID, records[0].DriverID)
}

func TestSetTransmitting_KeepsCoordinates(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	driverID := uuid.NewString()
	require.NoError(t, repo.UpsertLocation(ctx, sampleRecord(driverID)))

	require.NoError(t, repo.SetTransmitting(ctx, driverID, false))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	assert.False(t, got.IsTransmitting)
	assert.Equal(t, "10.5", got.Latitude)

	records, err := repo.ListTransmitting(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSetTransmitting_Idempotent(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	driverID := uuid.NewString()
	require.NoError(t, repo.UpsertLocation(ctx, sampleRecord(driverID)))

	require.NoError(t, repo.SetTransmitting(ctx, driverID, false))
	require.NoError(t, repo.SetTransmitting(ctx, driverID, false))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	assert.False(t, got.IsTransmitting)
}

func TestSetTransmitting_RefreshesTimestamp(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	driverID := uuid.NewString()
	record := sampleRecord(driverID)
	record.Timestamp = time.Now().Add(-time.Hour)
	require.NoError(t, repo.UpsertLocation(ctx, record))

	require.NoError(t, repo.SetTransmitting(ctx, driverID, false))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.WithinDuration(t, time.Now(), got.Timestamp, time.Minute)
}

func TestSetTransmitting_UnknownDriver(t *testing.T) {
	repo := setupTrackingRepoTest(t)
	ctx := context.Background()

	// Stop for a driver with no record still succeeds and must not
	// plant a coordinate-less record.
	driverID := uuid.NewString()
	require.NoError(t, repo.SetTransmitting(ctx, driverID, false))

	got, err := repo.GetLocation(ctx, driverID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
