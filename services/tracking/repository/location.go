package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ncastellanos/flotilla/internal/pkg/constants"
	"github.com/ncastellanos/flotilla/internal/pkg/database"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/tracking"
)

// TrackingRepo implements tracking.TrackingRepo backed by Redis. The
// ledger is one hash per driver plus a set of transmitting driver IDs
// and a geo index; every write goes through a transactional pipeline so
// the hash and the set never disagree.
type TrackingRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewTrackingRepo creates a new tracking repository
func NewTrackingRepo(cfg *models.Config, redisClient *database.RedisClient) tracking.TrackingRepo {
	return &TrackingRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// UpsertLocation replaces the driver's current record. Latest write wins.
func (r *TrackingRepo) UpsertLocation(ctx context.Context, record *models.LocationRecord) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, record.DriverID)

	pipe := r.redisClient.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:     record.Latitude,
		constants.FieldLongitude:    record.Longitude,
		constants.FieldTransmitting: strconv.FormatBool(record.IsTransmitting),
		constants.FieldGeohash:      record.Geohash,
		constants.FieldTimestamp:    strconv.FormatInt(record.Timestamp.UnixMilli(), 10),
	})

	if record.IsTransmitting {
		pipe.SAdd(ctx, constants.KeyTransmitting, record.DriverID)
	} else {
		pipe.SRem(ctx, constants.KeyTransmitting, record.DriverID)
	}

	if point, err := utils.ParseCoordinates(record.Latitude, record.Longitude); err == nil {
		pipe.GeoAdd(ctx, constants.KeyDriverGeo, &redis.GeoLocation{
			Longitude: point.Longitude,
			Latitude:  point.Latitude,
			Name:      record.DriverID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert location for driver %s: %w", record.DriverID, err)
	}
	return nil
}

// GetLocation returns the driver's current record, or nil when the
// driver has never reported. Absence is not an error.
func (r *TrackingRepo) GetLocation(ctx context.Context, driverID string) (*models.LocationRecord, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get location for driver %s: %w", driverID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return recordFromHash(driverID, fields), nil
}

// ListAll returns the ledger record of every known driver, transmitting
// or not. The geo index doubles as the roster of drivers that have ever
// reported a position.
func (r *TrackingRepo) ListAll(ctx context.Context) ([]models.LocationRecord, error) {
	driverIDs, err := r.redisClient.ZRange(ctx, constants.KeyDriverGeo, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	records := make([]models.LocationRecord, 0, len(driverIDs))
	for _, driverID := range driverIDs {
		key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
		fields, err := r.redisClient.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get location for driver %s: %w", driverID, err)
		}
		if len(fields) == 0 {
			logger.Warn("Indexed driver has no location record",
				logger.String("driver_id", driverID),
			)
			_ = r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID)
			continue
		}
		records = append(records, *recordFromHash(driverID, fields))
	}
	return records, nil
}

// ListTransmitting returns the records of every driver currently marked
// as transmitting.
func (r *TrackingRepo) ListTransmitting(ctx context.Context) ([]models.LocationRecord, error) {
	driverIDs, err := r.redisClient.SMembers(ctx, constants.KeyTransmitting)
	if err != nil {
		return nil, fmt.Errorf("failed to list transmitting drivers: %w", err)
	}

	records := make([]models.LocationRecord, 0, len(driverIDs))
	for _, driverID := range driverIDs {
		key := fmt.Sprintf(constants.KeyDriverLocation, driverID)
		fields, err := r.redisClient.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get location for driver %s: %w", driverID, err)
		}
		if len(fields) == 0 {
			// Set member without a hash: repair the index and move on.
			logger.Warn("Transmitting driver has no location record",
				logger.String("driver_id", driverID),
			)
			_ = r.redisClient.SRem(ctx, constants.KeyTransmitting, driverID)
			continue
		}
		records = append(records, *recordFromHash(driverID, fields))
	}
	return records, nil
}

// SetTransmitting flips the transmitting flag and refreshes the record
// timestamp, leaving the last known coordinates in place. A driver with
// no ledger record is a no-op success, so teardown stays safe to repeat
// and never plants a coordinate-less record.
func (r *TrackingRepo) SetTransmitting(ctx context.Context, driverID string, transmitting bool) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	exists, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check location for driver %s: %w", driverID, err)
	}
	if !exists {
		// Keep the transmitting index clean even without a record.
		_ = r.redisClient.SRem(ctx, constants.KeyTransmitting, driverID)
		return nil
	}

	pipe := r.redisClient.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		constants.FieldTransmitting: strconv.FormatBool(transmitting),
		constants.FieldTimestamp:    strconv.FormatInt(time.Now().UnixMilli(), 10),
	})
	if transmitting {
		pipe.SAdd(ctx, constants.KeyTransmitting, driverID)
	} else {
		pipe.SRem(ctx, constants.KeyTransmitting, driverID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set transmitting=%t for driver %s: %w", transmitting, driverID, err)
	}
	return nil
}

func recordFromHash(driverID string, fields map[string]string) *models.LocationRecord {
	record := &models.LocationRecord{
		DriverID:  driverID,
		Latitude:  fields[constants.FieldLatitude],
		Longitude: fields[constants.FieldLongitude],
		Geohash:   fields[constants.FieldGeohash],
	}
	record.IsTransmitting, _ = strconv.ParseBool(fields[constants.FieldTransmitting])
	if millis, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64); err == nil {
		record.Timestamp = time.UnixMilli(millis)
	}
	return record
}
