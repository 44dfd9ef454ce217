package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/tracking"
)

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	cfg   *models.Config
	repo  tracking.TrackingRepo
	gw    tracking.TrackingGW
	nowFn func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(cfg *models.Config, repo tracking.TrackingRepo, gw tracking.TrackingGW) tracking.TrackingUC {
	return &TrackingUC{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		nowFn: time.Now,
	}
}

// UpdateLocation validates a location sample, replaces the driver's
// ledger record and announces the change. The ledger write is the
// source of truth; a failed publish is logged and swallowed because
// viewers reconcile on their next pull.
func (u *TrackingUC) UpdateLocation(ctx context.Context, driverID string, req *models.LocationUpdateRequest) (*models.LocationRecord, error) {
	point, err := utils.ParseCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("invalid coordinates for driver %s: %w", driverID, err)
	}

	record := &models.LocationRecord{
		DriverID:       driverID,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		IsTransmitting: req.IsTransmitting,
		Geohash:        utils.EncodePoint(point, utils.GeohashPrecision),
		Timestamp:      u.nowFn(),
	}

	moved := true
	previous, err := u.repo.GetLocation(ctx, driverID)
	if err == nil && previous != nil {
		if prevPoint, perr := utils.ParseCoordinates(previous.Latitude, previous.Longitude); perr == nil {
			moved = utils.DistanceMeters(prevPoint, point) >= u.cfg.Tracking.MovementThresholdM
		}
	}

	if err := u.repo.UpsertLocation(ctx, record); err != nil {
		return nil, err
	}

	logger.Debug("Driver location updated",
		logger.String("driver_id", driverID),
		logger.String("geohash", record.Geohash),
		logger.Bool("transmitting", record.IsTransmitting),
		logger.Bool("moved", moved),
	)

	event := &models.LocationEvent{
		DriverID:       driverID,
		Latitude:       record.Latitude,
		Longitude:      record.Longitude,
		IsTransmitting: record.IsTransmitting,
		Timestamp:      record.Timestamp.UnixMilli(),
	}
	if err := u.gw.PublishLocationUpdate(ctx, event); err != nil {
		logger.Warn("Failed to publish location update",
			logger.ErrorField(err),
			logger.String("driver_id", driverID),
		)
	}

	if previous != nil && previous.IsTransmitting != record.IsTransmitting {
		statusEvent := &models.TransmissionStatusEvent{
			DriverID:       driverID,
			IsTransmitting: record.IsTransmitting,
		}
		if err := u.gw.PublishTransmissionStatus(ctx, statusEvent); err != nil {
			logger.Warn("Failed to publish transmission status",
				logger.ErrorField(err),
				logger.String("driver_id", driverID),
			)
		}
	}

	return record, nil
}

// SetTransmissionStatus flips the transmitting flag without touching the
// driver's last known coordinates.
func (u *TrackingUC) SetTransmissionStatus(ctx context.Context, driverID string, transmitting bool) error {
	if err := u.repo.SetTransmitting(ctx, driverID, transmitting); err != nil {
		return err
	}

	event := &models.TransmissionStatusEvent{
		DriverID:       driverID,
		IsTransmitting: transmitting,
	}
	if err := u.gw.PublishTransmissionStatus(ctx, event); err != nil {
		logger.Warn("Failed to publish transmission status",
			logger.ErrorField(err),
			logger.String("driver_id", driverID),
		)
	}
	return nil
}

// StopTransmission marks the driver as no longer transmitting and tells
// viewers to drop them from any locally cached active list. Safe to
// repeat; drivers fire this on page unload and may retry.
func (u *TrackingUC) StopTransmission(ctx context.Context, driverID string) error {
	if err := u.repo.SetTransmitting(ctx, driverID, false); err != nil {
		return err
	}

	logger.Info("Driver transmission stopped",
		logger.String("driver_id", driverID),
	)

	event := &models.TransmissionStoppedEvent{DriverID: driverID}
	if err := u.gw.PublishTransmissionStopped(ctx, event); err != nil {
		logger.Warn("Failed to publish transmission stopped",
			logger.ErrorField(err),
			logger.String("driver_id", driverID),
		)
	}
	return nil
}

// GetDriverLocation returns the driver's current ledger record
func (u *TrackingUC) GetDriverLocation(ctx context.Context, driverID string) (*models.LocationRecord, error) {
	return u.repo.GetLocation(ctx, driverID)
}

// ListLocations returns the last known record of every driver
func (u *TrackingUC) ListLocations(ctx context.Context) ([]models.LocationRecord, error) {
	return u.repo.ListAll(ctx)
}

// ListTransmitting returns every driver currently marked as transmitting
func (u *TrackingUC) ListTransmitting(ctx context.Context) ([]models.LocationRecord, error) {
	return u.repo.ListTransmitting(ctx)
}
